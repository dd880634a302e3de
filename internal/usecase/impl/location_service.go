package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/geo"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultGeocodeInterval = time.Second

type locationService struct {
	geocoder service.Geocoder
	interval time.Duration
	logger   *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	interval := defaultGeocodeInterval
	if params.Config != nil && params.Config.Geocoding != nil && params.Config.Geocoding.MinInterval > 0 {
		interval = params.Config.Geocoding.MinInterval
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &locationService{
		geocoder: params.Geocoder,
		interval: interval,
		logger:   logger,
	}
}

// Geocode resolves a single address
func (s *locationService) Geocode(ctx context.Context, address, country string) (*entity.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	result := s.geocoder.GeocodeAddress(ctx, address, country)
	if result == nil {
		return nil, domainerrors.ErrGeocodeNotFound
	}

	return result, nil
}

// ReverseGeocode resolves coordinates to a display address
func (s *locationService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	if !geo.IsValidLatLng(lat, lng) {
		return "", domainerrors.ErrInvalidCoordinates
	}

	displayName := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if displayName == nil {
		return "", domainerrors.ErrGeocodeNotFound
	}

	return *displayName, nil
}

// GeocodeBatch resolves addresses sequentially, at most one lookup per interval.
// The limiter paces the loop the way geocoding.Delay paces single callers, without sleeping before the first lookup.
// Results line up with addresses; misses are nil. A cancelled ctx returns what was resolved so far.
func (s *locationService) GeocodeBatch(ctx context.Context, addresses []string, country string) ([]*entity.GeocodeResult, error) {
	results := make([]*entity.GeocodeResult, len(addresses))
	limiter := rate.NewLimiter(rate.Every(s.interval), 1)

	for i, address := range addresses {
		if strings.TrimSpace(address) == "" {
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return results, errors.Wrap(err, "geocode batch interrupted")
		}

		results[i] = s.geocoder.GeocodeAddress(ctx, address, country)
		if results[i] == nil {
			s.logger.Debug("Address not found", slog.Int("index", i))
		}
	}

	return results, nil
}
