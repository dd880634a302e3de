// Package redis wraps go-redis for scheduler locks and push delivery dedupe.
package redis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courier/config"
	"courier/internal/domain/lifecycle"
	"courier/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "courier"

// cmdable is the subset of go-redis commands used here.
type cmdable interface {
	Ping(ctx context.Context) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	MGet(ctx context.Context, keys ...string) *goredis.SliceCmd
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) *goredis.BoolCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Client is a namespaced Redis connection.
type Client struct {
	store  cmdable
	prefix string
}

// Params defines the parameters required for the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis when configured. Without an address it returns nil and callers fall back.
func New(params Params) (*Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, locks and push dedupe disabled")

		return nil, nil
	}

	raw := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	client := newClient(raw, cfg.KeyPrefix)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx); err != nil {
				return err
			}
			params.Logger.Info("Redis connection established", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(raw.Close())
		},
	})

	return client, nil
}

func newClient(store cmdable, prefix string) *Client {
	if prefix = strings.Trim(prefix, ":"); prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &Client{store: store, prefix: prefix}
}

// Key joins parts under the client's namespace.
func (c *Client) Key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping redis")
	}

	return nil
}

// Get returns the value at key; a missing key yields goredis.Nil.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.store.Get(ctx, key).Result()
}

// MGet returns values aligned with keys; missing keys are nil.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]any, error) {
	return c.store.MGet(ctx, keys...).Result()
}

// SetNX sets key only if it does not exist yet.
func (c *Client) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return c.store.SetNX(ctx, key, value, ttl).Result()
}

// Del removes keys.
func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.store.Del(ctx, keys...).Err()
}
