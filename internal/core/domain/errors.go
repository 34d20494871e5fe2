package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room is not available")
	ErrRoomExists           = errors.New("room already exists")
	ErrInvalidRoom          = errors.New("invalid room")
	ErrInvalidDateRange     = errors.New("invalid date range: check-out must be after check-in")
	ErrInvalidRate          = errors.New("invalid nightly rate")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidRoomStatus    = errors.New("invalid room status")
	ErrInvalidTransition    = errors.New("invalid booking transition")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidUser          = errors.New("invalid user")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
	ErrStore                = errors.New("store error")
)

var taxonomy = []error{
	ErrRoomNotFound, ErrRoomUnavailable, ErrRoomExists, ErrInvalidRoom, ErrInvalidDateRange, ErrInvalidRate,
	ErrInvalidPaymentMethod, ErrInvalidRoomStatus, ErrInvalidTransition, ErrBookingNotFound,
	ErrUserNotFound, ErrUserExists, ErrInvalidRole, ErrInvalidUser, ErrInvalidCredentials, ErrForbidden, ErrStore,
}

// storeError keeps the underlying persistence failure reachable through
// errors.Is/As while also matching ErrStore.
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string {
	return fmt.Sprintf("store error: %s: %v", e.op, e.err)
}

func (e *storeError) Unwrap() []error {
	return []error{ErrStore, e.err}
}

// StoreError wraps err as a persistence failure of op. Errors that already
// belong to the domain taxonomy are returned unchanged.
func StoreError(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return &storeError{op: op, err: err}
}

func isDomainError(err error) bool {
	for _, target := range taxonomy {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
