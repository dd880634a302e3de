package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courier/config"
	"courier/internal/delivery/api/router"
	"courier/internal/delivery/api/router/handler"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"
	mockUc "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockUc.MockDeliveryUsecase, *mockUc.MockLocationUsecase) {
	t.Helper()

	deliveryUC := mockUc.NewMockDeliveryUsecase(t)
	locationUC := mockUc.NewMockLocationUsecase(t)
	logger := slog.New(slog.DiscardHandler)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	e := NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: deliveryUC, Logger: logger}),
			LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: locationUC, Logger: logger}),
			Registry:        prometheus.NewRegistry(),
		},
	})

	return e, deliveryUC, locationUC
}

func call(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec, _ := call(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuote(t *testing.T) {
	t.Run("returns the quote", func(t *testing.T) {
		e, deliveryUC, _ := newTestServer(t)
		store := usecase.Coordinate{Lat: 25.033, Lng: 121.5654}
		customer := usecase.Coordinate{Lat: 25.047, Lng: 121.517}
		deliveryUC.EXPECT().Quote(mock.Anything, store, customer).Return(&usecase.DeliveryQuote{
			DeliveryInfo:  usecase.DeliveryInfo{DistanceKm: 5.1, DistanceText: "5.1 km", DeliveryFee: 60, EstimatedTime: 40},
			CanDeliver:    true,
			MaxDistanceKm: 15,
			RatePerKm:     10,
		}, nil).Once()

		rec, env := call(t, e, http.MethodPost, "/v1/delivery/quote",
			`{"store":{"lat":25.033,"lng":121.5654},"customer":{"lat":25.047,"lng":121.517}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, env.Meta.RequestID)

		var quote usecase.DeliveryQuote
		require.NoError(t, json.Unmarshal(env.Data, &quote))
		assert.Equal(t, 60.0, quote.DeliveryFee)
		assert.True(t, quote.CanDeliver)
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		e, deliveryUC, _ := newTestServer(t)
		deliveryUC.EXPECT().Quote(mock.Anything, usecase.Coordinate{}, usecase.Coordinate{Lat: 1, Lng: 1}).
			Return(&usecase.DeliveryQuote{CanDeliver: true}, nil).Once()

		rec, _ := call(t, e, http.MethodPost, "/v1/delivery/quote",
			`{"store":{"lat":0,"lng":0},"customer":{"lat":1,"lng":1}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		rec, env := call(t, e, http.MethodPost, "/v1/delivery/quote",
			`{"store":{"lat":95,"lng":121},"customer":{"lat":25,"lng":121}}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), "lat")
	})

	t.Run("missing customer", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		rec, env := call(t, e, http.MethodPost, "/v1/delivery/quote", `{"store":{"lat":25,"lng":121}}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		rec, env := call(t, e, http.MethodPost, "/v1/delivery/quote", `{"store":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("domain error keeps its status", func(t *testing.T) {
		e, deliveryUC, _ := newTestServer(t)
		deliveryUC.EXPECT().Quote(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCoordinates).Once()

		rec, env := call(t, e, http.MethodPost, "/v1/delivery/quote",
			`{"store":{"lat":25,"lng":121},"customer":{"lat":25,"lng":121}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
	})
}

func TestGeocode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, _, locationUC := newTestServer(t)
		locationUC.EXPECT().Geocode(mock.Anything, "Taipei 101", "tw").
			Return(&entity.GeocodeResult{Latitude: 25.03, Longitude: 121.56, DisplayName: "Taipei 101"}, nil).Once()

		rec, env := call(t, e, http.MethodGet, "/v1/geocode?address=Taipei+101&country=tw", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.GeocodeResult
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Taipei 101", got.DisplayName)
	})

	t.Run("not found", func(t *testing.T) {
		e, _, locationUC := newTestServer(t)
		locationUC.EXPECT().Geocode(mock.Anything, "nowhere", "").Return(nil, domainerrors.ErrGeocodeNotFound).Once()

		rec, env := call(t, e, http.MethodGet, "/v1/geocode?address=nowhere", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "GEOCODE_NOT_FOUND", env.Error.Code)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		e, _, locationUC := newTestServer(t)
		locationUC.EXPECT().Geocode(mock.Anything, "x", "").Return(nil, errors.New("socket closed")).Once()

		rec, env := call(t, e, http.MethodGet, "/v1/geocode?address=x", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "socket closed")
	})
}

func TestReverseGeocode(t *testing.T) {
	t.Run("resolves", func(t *testing.T) {
		e, _, locationUC := newTestServer(t)
		locationUC.EXPECT().ReverseGeocode(mock.Anything, 25.03, 121.56).Return("Xinyi District, Taipei", nil).Once()

		rec, env := call(t, e, http.MethodGet, "/v1/geocode/reverse?lat=25.03&lng=121.56", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"display_name":"Xinyi District, Taipei"}`, string(env.Data))
	})

	t.Run("non numeric", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		rec, _ := call(t, e, http.MethodGet, "/v1/geocode/reverse?lat=north&lng=1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of range or not finite", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		for _, query := range []string{"lat=95&lng=121", "lat=25&lng=-181", "lat=NaN&lng=121", "lat=25&lng=Inf"} {
			rec, env := call(t, e, http.MethodGet, "/v1/geocode/reverse?"+query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
			require.NotNil(t, env.Error, query)
			assert.Equal(t, "INVALID_COORDINATES", env.Error.Code, query)
		}
	})
}

func TestGeocodeBatch(t *testing.T) {
	t.Run("resolves in order", func(t *testing.T) {
		e, _, locationUC := newTestServer(t)
		locationUC.EXPECT().GeocodeBatch(mock.Anything, []string{"a", "b"}, "tw").
			Return([]*entity.GeocodeResult{{DisplayName: "A"}, nil}, nil).Once()

		rec, env := call(t, e, http.MethodPost, "/v1/geocode/batch", `{"addresses":["a","b"],"country":"tw"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []*entity.GeocodeResult
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 2)
		assert.Nil(t, got[1])
	})

	t.Run("empty batch", func(t *testing.T) {
		e, _, _ := newTestServer(t)

		rec, _ := call(t, e, http.MethodPost, "/v1/geocode/batch", `{"addresses":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
