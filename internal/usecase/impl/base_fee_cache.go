package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"courier/config"
	"courier/internal/domain/lifecycle"
	"courier/internal/domain/repository"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	// fallback defaults to keep fee calculation working when config is missing/invalid
	defaultFeePerKm    = 10.0
	defaultFeeCacheTTL = 5 * time.Minute

	// feeRetryAfter spaces out fetches while the settings store keeps failing.
	feeRetryAfter = 30 * time.Second

	baseFeeFlightKey = "base_fee_per_km"
)

// BaseFeeCache holds the remotely configured per-km rate.
// Readers never block on the network; a stale read starts one shared refresh.
type BaseFeeCache struct {
	settings repository.SettingsRepository
	logger   *slog.Logger
	ttl      time.Duration
	now      func() time.Time

	mu        sync.RWMutex
	value     float64
	fetchedAt time.Time
	retryAt   time.Time

	group singleflight.Group
}

// BaseFeeCacheParams holds dependencies for BaseFeeCache, injected by Fx.
type BaseFeeCacheParams struct {
	fx.In

	Settings repository.SettingsRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewBaseFeeCache creates a cache seeded with the configured default rate and marked stale.
func NewBaseFeeCache(params BaseFeeCacheParams) *BaseFeeCache {
	fallback := defaultFeePerKm
	ttl := defaultFeeCacheTTL

	if params.Config != nil && params.Config.Delivery != nil {
		if params.Config.Delivery.DefaultFeePerKm > 0 {
			fallback = params.Config.Delivery.DefaultFeePerKm
		}
		if params.Config.Delivery.FeeCacheTTL > 0 {
			ttl = params.Config.Delivery.FeeCacheTTL
		}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BaseFeeCache{
		settings: params.Settings,
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		value:    fallback,
	}
}

// Get returns the last known rate and starts a background refresh when it is stale.
func (c *BaseFeeCache) Get() float64 {
	value, stale := c.snapshot()
	if stale {
		c.EnsureFresh()
	}

	return value
}

// EnsureFresh starts a refresh if the rate is stale and none is in flight. It does not wait.
func (c *BaseFeeCache) EnsureFresh() {
	if _, stale := c.snapshot(); !stale {
		return
	}

	c.group.DoChan(baseFeeFlightKey, c.fetch)
}

// Refresh waits for a fresh rate, joining any fetch already in flight.
// A failed fetch keeps the previous rate; only ctx cancellation is returned.
func (c *BaseFeeCache) Refresh(ctx context.Context) (float64, error) {
	value, stale := c.snapshot()
	if !stale {
		return value, nil
	}

	ch := c.group.DoChan(baseFeeFlightKey, c.fetch)

	select {
	case <-ctx.Done():
		return value, ctx.Err()
	case <-ch:
	}

	value, _ = c.snapshot()

	return value, nil
}

// snapshot reports the current rate and whether a fetch should start now.
func (c *BaseFeeCache) snapshot() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	stale := c.fetchedAt.IsZero() || now.Sub(c.fetchedAt) >= c.ttl

	return c.value, stale && !now.Before(c.retryAt)
}

func (c *BaseFeeCache) backOff() {
	wait := feeRetryAfter
	if c.ttl < wait {
		wait = c.ttl
	}

	c.mu.Lock()
	c.retryAt = c.now().Add(wait)
	c.mu.Unlock()
}

// fetch runs detached from any caller context since its result is shared.
func (c *BaseFeeCache) fetch() (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	rate, err := c.settings.GetBaseFeePerKm(ctx)
	if err != nil {
		c.logger.Warn("Failed to refresh base fee per km, keeping last value", slog.Any("error", err))
		c.backOff()

		return nil, nil
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		c.logger.Warn("Ignoring invalid base fee per km", slog.Float64("rate", rate))
		c.backOff()

		return nil, nil
	}

	c.mu.Lock()
	c.value = rate
	c.fetchedAt = c.now()
	c.retryAt = time.Time{}
	c.mu.Unlock()

	return rate, nil
}
