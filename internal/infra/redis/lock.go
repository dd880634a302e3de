package redis

import (
	"context"
	"time"

	"courier/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultLockTTL = 10 * time.Minute

// lockStore defines the operations used by Lock.
type lockStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Lock is a best-effort exclusive lease held through SET NX with a TTL.
// The TTL bounds how long a crashed holder blocks others.
type Lock struct {
	store lockStore
	key   string
	ttl   time.Duration
	owner string
}

// NewLock constructs a lock on key.
func NewLock(store lockStore, key string, ttl time.Duration) (*Lock, error) {
	if store == nil {
		return nil, errors.New("redis client required for lock")
	}
	if key == "" {
		return nil, errors.New("lock key is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &Lock{store: store, key: key, ttl: ttl}, nil
}

// Acquire tries to take the lease; false means someone else holds it.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()

	ok, err := l.store.SetNX(ctx, l.key, owner, l.ttl)
	if err != nil {
		return false, errors.Wrap(err, "setnx lock")
	}
	if ok {
		l.owner = owner
	}

	return ok, nil
}

// Release deletes the key only while this lock still owns it.
func (l *Lock) Release(ctx context.Context) error {
	if l.owner == "" {
		return nil
	}

	value, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			l.owner = ""

			return nil
		}

		return errors.Wrap(err, "read lock owner")
	}

	if value == l.owner {
		if err := l.store.Del(ctx, l.key); err != nil {
			return errors.Wrap(err, "delete lock")
		}
	}
	l.owner = ""

	return nil
}
