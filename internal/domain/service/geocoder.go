package service

import (
	"context"

	"courier/internal/domain/entity"
)

// Geocoder resolves addresses. Lookups never fail loudly: any problem yields nil.
type Geocoder interface {
	// GeocodeAddress returns the best match for address, optionally restricted to a country code.
	GeocodeAddress(ctx context.Context, address, country string) *entity.GeocodeResult

	// ReverseGeocode returns a display address for the coordinates.
	ReverseGeocode(ctx context.Context, lat, lng float64) *string
}
