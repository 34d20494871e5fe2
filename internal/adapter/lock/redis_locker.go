// Package lock serialises reservations of the same room across requests.
package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock that another request has since taken is left alone.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

const defaultRetryInterval = 50 * time.Millisecond

type RedisLocker struct {
	client redis.Cmdable
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
	token  func() string
}

type RedisOption func(*RedisLocker)

func WithRetryInterval(d time.Duration) RedisOption {
	return func(l *RedisLocker) { l.retry = d }
}

func WithTokenFunc(fn func() string) RedisOption {
	return func(l *RedisLocker) { l.token = fn }
}

// NewRedisLocker holds each lock for at most ttl and waits up to wait for a
// busy room before giving up.
func NewRedisLocker(client redis.Cmdable, ttl, wait time.Duration, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
		retry:  defaultRetryInterval,
		token:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func roomKey(roomNumber string) string {
	return fmt.Sprintf("lock:room:%s", roomNumber)
}

func (l *RedisLocker) Lock(ctx context.Context, roomNumber string) (func(), error) {
	key := roomKey(roomNumber)
	token := l.token()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		if !time.Now().Add(l.retry).Before(deadline) {
			return nil, ports.ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ports.ErrLockNotAcquired, ctx.Err())
		case <-time.After(l.retry):
		}
	}
}

// release runs on its own deadline so a cancelled request still frees the room.
func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
		log.Printf("Failed to release lock %s: %v", key, err)
	}
}
