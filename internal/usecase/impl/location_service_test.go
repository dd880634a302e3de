package impl

import (
	"context"
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	mockSvc "courier/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLocationService(t *testing.T, interval time.Duration) (*mockSvc.MockGeocoder, *locationService) {
	t.Helper()

	geocoder := mockSvc.NewMockGeocoder(t)
	cfg := &config.Config{Geocoding: &config.GeocodingConfig{MinInterval: interval}}
	service := NewLocationService(LocationServiceParams{Geocoder: geocoder, Config: cfg}).(*locationService)

	return geocoder, service
}

func TestLocationService_Geocode_Success(t *testing.T) {
	geocoder, service := newTestLocationService(t, time.Millisecond)
	ctx := context.Background()

	expected := &entity.GeocodeResult{Latitude: 24.7136, Longitude: 46.6753, DisplayName: "Riyadh"}
	geocoder.EXPECT().GeocodeAddress(ctx, "Riyadh", "sa").Return(expected)

	result, err := service.Geocode(ctx, "  Riyadh ", "sa")
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestLocationService_Geocode_NotFound(t *testing.T) {
	geocoder, service := newTestLocationService(t, time.Millisecond)
	ctx := context.Background()

	geocoder.EXPECT().GeocodeAddress(ctx, "nowhere at all", "").Return(nil)

	result, err := service.Geocode(ctx, "nowhere at all", "")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeNotFound)
}

func TestLocationService_Geocode_EmptyAddress(t *testing.T) {
	_, service := newTestLocationService(t, time.Millisecond)

	result, err := service.Geocode(context.Background(), "   ", "")
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLocationService_ReverseGeocode(t *testing.T) {
	geocoder, service := newTestLocationService(t, time.Millisecond)
	ctx := context.Background()

	name := "King Fahd Road, Riyadh"
	geocoder.EXPECT().ReverseGeocode(ctx, 24.7, 46.6).Return(&name)

	got, err := service.ReverseGeocode(ctx, 24.7, 46.6)
	require.NoError(t, err)
	assert.Equal(t, name, got)
}

func TestLocationService_ReverseGeocode_InvalidCoordinates(t *testing.T) {
	_, service := newTestLocationService(t, time.Millisecond)

	_, err := service.ReverseGeocode(context.Background(), 90.0001, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestLocationService_ReverseGeocode_NotFound(t *testing.T) {
	geocoder, service := newTestLocationService(t, time.Millisecond)
	ctx := context.Background()

	geocoder.EXPECT().ReverseGeocode(ctx, 0.0, 0.0).Return(nil)

	_, err := service.ReverseGeocode(ctx, 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeNotFound)
}

func TestLocationService_GeocodeBatch_SpacesRequests(t *testing.T) {
	const interval = 30 * time.Millisecond
	geocoder, service := newTestLocationService(t, interval)
	ctx := context.Background()

	var calls []time.Time
	geocoder.EXPECT().
		GeocodeAddress(ctx, mock.AnythingOfType("string"), "sa").
		RunAndReturn(func(_ context.Context, address, _ string) *entity.GeocodeResult {
			calls = append(calls, time.Now())
			if address == "missing" {
				return nil
			}

			return &entity.GeocodeResult{DisplayName: address}
		}).
		Times(3)

	results, err := service.GeocodeBatch(ctx, []string{"a", "", "missing", "b"}, "sa")
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "a", results[0].DisplayName)
	assert.Nil(t, results[1])
	assert.Nil(t, results[2])
	assert.Equal(t, "b", results[3].DisplayName)

	require.Len(t, calls, 3)
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i].Sub(calls[i-1]), interval-5*time.Millisecond)
	}
}

func TestLocationService_GeocodeBatch_Cancelled(t *testing.T) {
	_, service := newTestLocationService(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := service.GeocodeBatch(ctx, []string{"a", "b"}, "")
	require.Error(t, err)
	assert.Len(t, results, 2)
	assert.Nil(t, results[0])
}
