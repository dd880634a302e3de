package impl

import (
	"context"
	"math"
	"testing"

	"courier/config"
	domainerrors "courier/internal/domain/errors"
	mockRepo "courier/internal/mocks/repository"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newWarmDeliveryService returns a service whose fee cache already holds rate.
func newWarmDeliveryService(t *testing.T, rate float64, cfg *config.Config) usecase.DeliveryUsecase {
	t.Helper()

	settings := mockRepo.NewMockSettingsRepository(t)
	settings.EXPECT().GetBaseFeePerKm(mock.Anything).Return(rate, nil).Once()

	cache := NewBaseFeeCache(BaseFeeCacheParams{Settings: settings, Config: cfg})
	_, err := cache.Refresh(context.Background())
	require.NoError(t, err)

	return NewDeliveryService(DeliveryServiceParams{FeeCache: cache, Config: cfg})
}

func TestDeliveryService_CalculateDistance(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})

	taipei101 := usecase.Coordinate{Lat: 25.0330, Lng: 121.5654}
	nearby := usecase.Coordinate{Lat: 25.0425, Lng: 121.5649}

	forward := service.CalculateDistance(taipei101, nearby)
	backward := service.CalculateDistance(nearby, taipei101)

	assert.InDelta(t, 1.0576, forward, 0.001)
	assert.InDelta(t, forward, backward, 1e-9)
	assert.Zero(t, service.CalculateDistance(taipei101, taipei101))
}

func TestDeliveryService_CalculateDeliveryFee_CeilingRule(t *testing.T) {
	const rate = 12.0
	service := newWarmDeliveryService(t, rate, &config.Config{})
	ctx := context.Background()

	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{name: "zero distance", distance: 0, expected: 0},
		{name: "under one kilometer bills one", distance: 0.3, expected: rate},
		{name: "exactly one kilometer", distance: 1.0, expected: rate},
		{name: "just over one kilometer bills two", distance: 1.01, expected: 2 * rate},
		{name: "long distance", distance: 14.2, expected: 15 * rate},
		{name: "negative distance", distance: -2, expected: 0},
		{name: "nan distance", distance: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.CalculateDeliveryFee(ctx, tt.distance))
		})
	}
}

func TestDeliveryService_CalculateDeliveryFee_Monotonic(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})
	ctx := context.Background()

	previous := 0.0
	for d := 0.0; d <= 30; d += 0.07 {
		fee := service.CalculateDeliveryFee(ctx, d)
		assert.GreaterOrEqual(t, fee, previous, "fee decreased at %.2f km", d)
		assert.Zero(t, math.Mod(fee, 10), "fee %.2f is not a multiple of the rate", fee)
		previous = fee
	}
}

func TestDeliveryService_CalculateDeliveryFeeAsync(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})

	fee, err := service.CalculateDeliveryFeeAsync(context.Background(), 2.5)
	require.NoError(t, err)
	assert.Equal(t, 30.0, fee)
}

func TestDeliveryService_CalculateDeliveryInfo(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})
	ctx := context.Background()

	origin := usecase.Coordinate{Lat: 0, Lng: 0}

	t.Run("same point", func(t *testing.T) {
		info := service.CalculateDeliveryInfo(ctx, origin, origin, 0)

		assert.Zero(t, info.DistanceKm)
		assert.Equal(t, "0 m", info.DistanceText)
		assert.Zero(t, info.DeliveryFee)
		assert.Equal(t, 30, info.EstimatedTime)
	})

	t.Run("short hop in meters", func(t *testing.T) {
		info := service.CalculateDeliveryInfo(ctx, origin, usecase.Coordinate{Lat: 0.003, Lng: 0}, 0)

		assert.InDelta(t, 0.3336, info.DistanceKm, 0.0005)
		assert.Equal(t, "334 m", info.DistanceText)
		assert.Equal(t, 10.0, info.DeliveryFee)
		assert.Equal(t, 31, info.EstimatedTime)
	})

	t.Run("custom base time", func(t *testing.T) {
		info := service.CalculateDeliveryInfo(ctx, origin, usecase.Coordinate{Lat: 0.01, Lng: 0}, 20)

		assert.Equal(t, "1.1 km", info.DistanceText)
		assert.Equal(t, 20.0, info.DeliveryFee)
		assert.Equal(t, 22, info.EstimatedTime)
	})
}

func TestDeliveryService_CanDeliver(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})

	assert.True(t, service.CanDeliver(15, 0))
	assert.False(t, service.CanDeliver(15.01, 0))
	assert.True(t, service.CanDeliver(4, 5))
	assert.False(t, service.CanDeliver(6, 5))
}

func TestDeliveryService_CanDeliver_ConfiguredLimit(t *testing.T) {
	cfg := &config.Config{Delivery: &config.DeliveryConfig{MaxDistanceKm: 8}}
	service := newWarmDeliveryService(t, 10, cfg)

	assert.True(t, service.CanDeliver(8, 0))
	assert.False(t, service.CanDeliver(9, 0))
}

func TestDeliveryService_Quote(t *testing.T) {
	service := newWarmDeliveryService(t, 10, &config.Config{})
	ctx := context.Background()

	t.Run("in range", func(t *testing.T) {
		quote, err := service.Quote(ctx, usecase.Coordinate{Lat: 0, Lng: 0}, usecase.Coordinate{Lat: 0.01, Lng: 0})
		require.NoError(t, err)

		assert.True(t, quote.CanDeliver)
		assert.Equal(t, 20.0, quote.DeliveryFee)
		assert.Equal(t, 10.0, quote.RatePerKm)
		assert.Equal(t, defaultMaxDistanceKm, quote.MaxDistanceKm)
	})

	t.Run("out of range", func(t *testing.T) {
		quote, err := service.Quote(ctx, usecase.Coordinate{Lat: 0, Lng: 0}, usecase.Coordinate{Lat: 0.2, Lng: 0})
		require.NoError(t, err)

		assert.False(t, quote.CanDeliver)
		assert.Equal(t, 74, quote.EstimatedTime)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		quote, err := service.Quote(ctx, usecase.Coordinate{Lat: 91, Lng: 0}, usecase.Coordinate{Lat: 0, Lng: 0})

		assert.Nil(t, quote)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}
