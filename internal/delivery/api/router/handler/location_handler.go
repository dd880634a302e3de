package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"courier/internal/delivery/api/response"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/infra/geocoding"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for geocoding handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// GeocodeBatchRequest represents the request body for batch geocoding
type GeocodeBatchRequest struct {
	Addresses []string `json:"addresses" validate:"required,min=1,max=20,dive,required"`
	Country   string   `json:"country" validate:"omitempty,len=2"`
}

// Geocode handles GET /v1/geocode?address=&country=
func (h *LocationHandler) Geocode(c echo.Context) error {
	result, err := h.locationUC.Geocode(c.Request().Context(), c.QueryParam("address"), c.QueryParam("country"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ReverseGeocode handles GET /v1/geocode/reverse?lat=&lng=
func (h *LocationHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}

	// ParseFloat accepts NaN and Inf.
	if !geocoding.IsValidCoordinates(&lat, &lng) {
		return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates)
	}

	address, err := h.locationUC.ReverseGeocode(c.Request().Context(), lat, lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"display_name": address})
}

// GeocodeBatch handles POST /v1/geocode/batch. It is paced by the geocoder rate limit, so keep batches small.
func (h *LocationHandler) GeocodeBatch(c echo.Context) error {
	var req GeocodeBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid batch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	results, err := h.locationUC.GeocodeBatch(c.Request().Context(), req.Addresses, req.Country)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results)
}
