package scheduler

import (
	"context"
	"time"

	"courier/internal/infra/redis"
)

// Lock guards one job run across scheduler replicas.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// LockFactory creates the lock for a job name.
type LockFactory func(job string) (Lock, error)

// RedisLocks returns a factory of SETNX leases under the client's key prefix.
// A nil client yields local locks, which is only safe with a single replica.
func RedisLocks(client *redis.Client, ttl time.Duration) LockFactory {
	if client == nil {
		return LocalLocks()
	}

	return func(job string) (Lock, error) {
		return redis.NewLock(client, client.Key("scheduler", job), ttl)
	}
}

// LocalLocks returns locks that always succeed.
func LocalLocks() LockFactory {
	return func(string) (Lock, error) {
		return localLock{}, nil
	}
}

type localLock struct{}

func (localLock) Acquire(context.Context) (bool, error) { return true, nil }
func (localLock) Release(context.Context) error         { return nil }
