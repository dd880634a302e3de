package usecase

import (
	"context"
)

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DeliveryInfo is the computed distance, fee and time for one store/customer pair.
type DeliveryInfo struct {
	DistanceKm    float64 `json:"distance_km"`
	DistanceText  string  `json:"distance_text"`
	DeliveryFee   float64 `json:"delivery_fee"`
	EstimatedTime int     `json:"estimated_time"` // minutes
}

// DeliveryQuote is DeliveryInfo plus the range decision.
type DeliveryQuote struct {
	DeliveryInfo
	CanDeliver    bool    `json:"can_deliver"`
	MaxDistanceKm float64 `json:"max_distance_km"`
	RatePerKm     float64 `json:"rate_per_km"`
}

// DeliveryUsecase defines distance and fee calculations
type DeliveryUsecase interface {
	// CalculateDistance returns the great-circle distance in kilometers.
	CalculateDistance(store, customer Coordinate) float64

	// CalculateDeliveryFee bills every started kilometer at the cached rate. It never blocks on the network.
	CalculateDeliveryFee(ctx context.Context, distanceKm float64) float64

	// CalculateDeliveryFeeAsync waits for a fresh rate when the cached one is stale.
	// Fetch failures fall back to the cached or default rate; only ctx cancellation is returned.
	CalculateDeliveryFeeAsync(ctx context.Context, distanceKm float64) (float64, error)

	// CalculateDeliveryInfo computes distance, fee and estimated minutes. baseTimeMin <= 0 uses the configured base.
	CalculateDeliveryInfo(ctx context.Context, store, customer Coordinate, baseTimeMin int) DeliveryInfo

	// CanDeliver reports whether distanceKm is within maxKm. maxKm <= 0 uses the configured limit.
	CanDeliver(distanceKm, maxKm float64) bool

	// Quote validates coordinates and returns the full delivery quote.
	Quote(ctx context.Context, store, customer Coordinate) (*DeliveryQuote, error)
}
