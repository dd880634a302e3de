package impl

import (
	"context"
	"math"

	"courier/config"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/geo"
	"courier/internal/usecase"
	"courier/internal/util"

	"go.uber.org/fx"
)

const (
	defaultMaxDistanceKm = 15.0
	defaultBaseTimeMin   = 30
	minutesPerKm         = 2.0
)

type deliveryService struct {
	feeCache      *BaseFeeCache
	maxDistanceKm float64
	baseTimeMin   int
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	FeeCache *BaseFeeCache
	Config   *config.Config
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	maxKm := defaultMaxDistanceKm
	baseTime := defaultBaseTimeMin

	if params.Config != nil && params.Config.Delivery != nil {
		if params.Config.Delivery.MaxDistanceKm > 0 {
			maxKm = params.Config.Delivery.MaxDistanceKm
		}
		if params.Config.Delivery.BaseTimeMin > 0 {
			baseTime = params.Config.Delivery.BaseTimeMin
		}
	}

	return &deliveryService{
		feeCache:      params.FeeCache,
		maxDistanceKm: maxKm,
		baseTimeMin:   baseTime,
	}
}

// CalculateDistance returns the Haversine distance between store and customer
func (s *deliveryService) CalculateDistance(store, customer usecase.Coordinate) float64 {
	return geo.DistanceKm(geo.Point(store.Lat, store.Lng), geo.Point(customer.Lat, customer.Lng))
}

// CalculateDeliveryFee bills every started kilometer at the cached rate
func (s *deliveryService) CalculateDeliveryFee(_ context.Context, distanceKm float64) float64 {
	return feeFor(distanceKm, s.feeCache.Get())
}

// CalculateDeliveryFeeAsync is CalculateDeliveryFee after waiting for a fresh rate
func (s *deliveryService) CalculateDeliveryFeeAsync(ctx context.Context, distanceKm float64) (float64, error) {
	rate, err := s.feeCache.Refresh(ctx)
	if err != nil {
		return 0, err
	}

	return feeFor(distanceKm, rate), nil
}

// CalculateDeliveryInfo computes distance, fee and estimated minutes for one pair
func (s *deliveryService) CalculateDeliveryInfo(ctx context.Context, store, customer usecase.Coordinate, baseTimeMin int) usecase.DeliveryInfo {
	if baseTimeMin <= 0 {
		baseTimeMin = s.baseTimeMin
	}

	distanceKm := s.CalculateDistance(store, customer)

	return usecase.DeliveryInfo{
		DistanceKm:    distanceKm,
		DistanceText:  util.FormatDistance(distanceKm),
		DeliveryFee:   s.CalculateDeliveryFee(ctx, distanceKm),
		EstimatedTime: int(math.Round(float64(baseTimeMin) + minutesPerKm*distanceKm)),
	}
}

// CanDeliver reports whether distanceKm is within maxKm
func (s *deliveryService) CanDeliver(distanceKm, maxKm float64) bool {
	if maxKm <= 0 {
		maxKm = s.maxDistanceKm
	}

	return distanceKm <= maxKm
}

// Quote validates both coordinates and returns the delivery quote
func (s *deliveryService) Quote(ctx context.Context, store, customer usecase.Coordinate) (*usecase.DeliveryQuote, error) {
	if !geo.IsValidLatLng(store.Lat, store.Lng) || !geo.IsValidLatLng(customer.Lat, customer.Lng) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	info := s.CalculateDeliveryInfo(ctx, store, customer, 0)

	return &usecase.DeliveryQuote{
		DeliveryInfo:  info,
		CanDeliver:    s.CanDeliver(info.DistanceKm, 0),
		MaxDistanceKm: s.maxDistanceKm,
		RatePerKm:     s.feeCache.Get(),
	}, nil
}

// feeFor rounds the distance up to whole kilometers. Negative and NaN distances cost nothing.
func feeFor(distanceKm, ratePerKm float64) float64 {
	if math.IsNaN(distanceKm) || distanceKm <= 0 {
		return 0
	}

	return math.Ceil(distanceKm) * ratePerKm
}
