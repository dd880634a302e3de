package handler

import (
	"log/slog"
	"net/http"

	"courier/internal/delivery/api/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler serves fee and distance quotes
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// CoordinateRequest is one point on the map
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// QuoteRequest represents the request body for a delivery quote
type QuoteRequest struct {
	Store    CoordinateRequest `json:"store" validate:"required"`
	Customer CoordinateRequest `json:"customer" validate:"required"`
}

func (r CoordinateRequest) coordinate() usecase.Coordinate {
	return usecase.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

// Quote handles POST /v1/delivery/quote
func (h *DeliveryHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	quote, err := h.deliveryUC.Quote(c.Request().Context(), req.Store.coordinate(), req.Customer.coordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
