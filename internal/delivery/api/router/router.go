// Package router registers the API routes.
package router

import (
	"courier/internal/delivery/api/router/handler"
	"courier/internal/delivery/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler *handler.DeliveryHandler
	LocationHandler *handler.LocationHandler
	Registry        *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler *handler.DeliveryHandler
	locationHandler *handler.LocationHandler
	registry        *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler: params.DeliveryHandler,
		locationHandler: params.LocationHandler,
		registry:        params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	v1 := e.Group("/v1")

	deliveryGroup := v1.Group("/delivery")
	{
		deliveryGroup.POST("/quote", r.deliveryHandler.Quote)
	}

	geocodeGroup := v1.Group("/geocode")
	{
		geocodeGroup.GET("", r.locationHandler.Geocode)
		geocodeGroup.GET("/reverse", r.locationHandler.ReverseGeocode)
		geocodeGroup.POST("/batch", r.locationHandler.GeocodeBatch)
	}
}
