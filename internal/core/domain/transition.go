package domain

import (
	"fmt"
	"strings"
)

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionCancel   Action = "cancel"
)

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "check_in", "check-in", "check in", "checkin":
		return ActionCheckIn, nil
	case "check_out", "check-out", "check out", "checkout":
		return ActionCheckOut, nil
	case "cancel":
		return ActionCancel, nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, s)
}

type transitionKey struct {
	from   BookingStatus
	action Action
}

type transitionResult struct {
	booking BookingStatus
	room    RoomStatus
}

var transitions = map[transitionKey]transitionResult{
	{BookingBooked, ActionCheckIn}:     {BookingCheckedIn, RoomOccupied},
	{BookingCheckedIn, ActionCheckOut}: {BookingCheckedOut, RoomAvailable},
	{BookingBooked, ActionCancel}:      {BookingCancelled, RoomAvailable},
}

// Transition is the only way a booking changes status. It returns the new
// booking status together with the status its room must take.
func Transition(current BookingStatus, action Action) (BookingStatus, RoomStatus, error) {
	if current.IsTerminal() {
		return "", "", fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, current)
	}
	res, ok := transitions[transitionKey{current, action}]
	if !ok {
		return "", "", fmt.Errorf("%w: cannot %s a booking in status %q", ErrInvalidTransition, action, current)
	}
	return res.booking, res.room, nil
}
