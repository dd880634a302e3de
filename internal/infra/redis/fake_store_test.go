package redis

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// memoryStore is an in-memory cmdable. TTLs are recorded, not enforced.
type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Ping(context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", m.err)
}

func (m *memoryStore) Get(_ context.Context, key string) *goredis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return goredis.NewStringResult("", m.err)
	}
	value, ok := m.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}

	return goredis.NewStringResult(value, nil)
}

func (m *memoryStore) MGet(_ context.Context, keys ...string) *goredis.SliceCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return goredis.NewSliceResult(nil, m.err)
	}
	out := make([]any, len(keys))
	for i, key := range keys {
		if value, ok := m.values[key]; ok {
			out[i] = value
		}
	}

	return goredis.NewSliceResult(out, nil)
}

func (m *memoryStore) SetNX(_ context.Context, key string, value any, ttl time.Duration) *goredis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return goredis.NewBoolResult(false, m.err)
	}
	if _, exists := m.values[key]; exists {
		return goredis.NewBoolResult(false, nil)
	}
	m.values[key] = value.(string)
	m.ttls[key] = ttl

	return goredis.NewBoolResult(true, nil)
}

func (m *memoryStore) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			n++
		}
	}

	return goredis.NewIntResult(n, m.err)
}
