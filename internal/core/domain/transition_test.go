package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

func TestTransition_LegalPaths(t *testing.T) {
	b, r, err := domain.Transition(domain.BookingBooked, domain.ActionCheckIn)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, b)
	assert.Equal(t, domain.RoomOccupied, r)

	b, r, err = domain.Transition(domain.BookingCheckedIn, domain.ActionCheckOut)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, b)
	assert.Equal(t, domain.RoomAvailable, r)

	b, r, err = domain.Transition(domain.BookingBooked, domain.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b)
	assert.Equal(t, domain.RoomAvailable, r)
}

func TestTransition_EveryOtherPairIsRejected(t *testing.T) {
	legal := map[string]bool{
		fmt.Sprint(domain.BookingBooked, domain.ActionCheckIn):     true,
		fmt.Sprint(domain.BookingCheckedIn, domain.ActionCheckOut): true,
		fmt.Sprint(domain.BookingBooked, domain.ActionCancel):      true,
	}
	statuses := []domain.BookingStatus{domain.BookingBooked, domain.BookingCheckedIn, domain.BookingCheckedOut, domain.BookingCancelled}
	actions := []domain.Action{domain.ActionCheckIn, domain.ActionCheckOut, domain.ActionCancel}

	for _, s := range statuses {
		for _, a := range actions {
			if legal[fmt.Sprint(s, a)] {
				continue
			}
			_, _, err := domain.Transition(s, a)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition), "%s/%s should be rejected", s, a)
		}
	}
}

func TestTransition_CheckOutFromBookedIsRejected(t *testing.T) {
	_, _, err := domain.Transition(domain.BookingBooked, domain.ActionCheckOut)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransition_CancelCheckedInIsRejected(t *testing.T) {
	_, _, err := domain.Transition(domain.BookingCheckedIn, domain.ActionCancel)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestParseAction(t *testing.T) {
	for in, want := range map[string]domain.Action{
		"check_in":  domain.ActionCheckIn,
		"Check In":  domain.ActionCheckIn,
		"check-out": domain.ActionCheckOut,
		"Check Out": domain.ActionCheckOut,
		"CANCEL":    domain.ActionCancel,
	} {
		got, err := domain.ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseAction("delete")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransition_ClosedBookingsAcceptNoAction(t *testing.T) {
	assert.False(t, domain.BookingBooked.IsTerminal())
	assert.False(t, domain.BookingCheckedIn.IsTerminal())

	for _, s := range []domain.BookingStatus{domain.BookingCheckedOut, domain.BookingCancelled} {
		assert.True(t, s.IsTerminal())
		for _, a := range []domain.Action{domain.ActionCheckIn, domain.ActionCheckOut, domain.ActionCancel} {
			_, _, err := domain.Transition(s, a)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.ErrorContains(t, err, "booking is already "+string(s))
		}
	}
}
