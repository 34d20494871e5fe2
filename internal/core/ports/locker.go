package ports

import (
	"context"
	"errors"
)

var ErrLockNotAcquired = errors.New("lock not acquired")

// RoomLocker serialises reservations of the same room across processes.
// Lock waits a bounded time and fails with ErrLockNotAcquired when the room
// is still held by someone else.
type RoomLocker interface {
	Lock(ctx context.Context, roomNumber string) (unlock func(), err error)
}
