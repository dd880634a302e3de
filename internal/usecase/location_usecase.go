package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// LocationUsecase defines address lookup use cases
type LocationUsecase interface {
	// Geocode resolves an address, returning ErrGeocodeNotFound when nothing matched.
	Geocode(ctx context.Context, address, country string) (*entity.GeocodeResult, error)

	// ReverseGeocode resolves coordinates to a display address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)

	// GeocodeBatch resolves addresses one per interval; unresolved entries are nil.
	GeocodeBatch(ctx context.Context, addresses []string, country string) ([]*entity.GeocodeResult, error)
}
