// Package worker is the HTTP surface of the push worker: function endpoints, Pub/Sub push and metrics.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"courier/config"
	"courier/internal/delivery"
	"courier/internal/delivery/metrics"
	"courier/internal/delivery/middleware"
	"courier/internal/delivery/validator"
	"courier/internal/delivery/worker/handler"
	"courier/internal/domain/lifecycle"
	"courier/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Registry        *prometheus.Registry
	PushHandler     *handler.PushHandler
	FunctionHandler *handler.FunctionHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the router; split out so tests can drive it without a listener.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	e.Validator = validator.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(params.Registry)))

	// Pub/Sub queue kicks
	e.POST("/push", params.PushHandler.HandlePush)

	functions := e.Group("/functions")
	functions.POST("/push-worker", params.FunctionHandler.PushWorker)
	functions.POST("/reclaim-stale", params.FunctionHandler.ReclaimStale)
	functions.POST("/charge-subscriptions", params.FunctionHandler.ChargeSubscriptions)
	functions.POST("/notify-billing", params.FunctionHandler.NotifyBilling)
	functions.POST("/notify-user", params.FunctionHandler.NotifyUser)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
