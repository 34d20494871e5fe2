package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// LocalLocker is the single-process counterpart of RedisLocker, used with the
// in-memory store.
type LocalLocker struct {
	mu    sync.Mutex
	rooms map[string]*roomSlot
	wait  time.Duration
}

// roomSlot lives only while a holder or waiter references it.
type roomSlot struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{rooms: make(map[string]*roomSlot), wait: wait}
}

func (l *LocalLocker) join(roomNumber string) *roomSlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.rooms[roomNumber]
	if !ok {
		s = &roomSlot{ch: make(chan struct{}, 1)}
		l.rooms[roomNumber] = s
	}
	s.refs++
	return s
}

func (l *LocalLocker) leave(roomNumber string, s *roomSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.rooms, roomNumber)
	}
}

func (l *LocalLocker) Lock(ctx context.Context, roomNumber string) (func(), error) {
	s := l.join(roomNumber)

	select {
	case s.ch <- struct{}{}:
		return l.releaser(roomNumber, s), nil
	default:
	}

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
		return l.releaser(roomNumber, s), nil
	case <-timer.C:
		l.leave(roomNumber, s)
		return nil, ports.ErrLockNotAcquired
	case <-ctx.Done():
		l.leave(roomNumber, s)
		return nil, fmt.Errorf("%w: %v", ports.ErrLockNotAcquired, ctx.Err())
	}
}

func (l *LocalLocker) releaser(roomNumber string, s *roomSlot) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.leave(roomNumber, s)
		})
	}
}
