package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed constantly and only logged when they fail.
var quietPaths = []string{"/health", "/metrics"}

// LoggerMiddleware logs every request in debug mode and failing requests always.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// The error handler has not run yet; echo's HTTPError carries the eventual status.
		status := c.Response().Status
		var he *echo.HTTPError
		var appErr domainerrors.AppError
		if errors.As(err, &he) {
			status = he.Code
		} else if errors.As(err, &appErr) {
			status = appErr.HTTPCode()
		} else if err != nil && !c.Response().Committed {
			status = http.StatusInternalServerError
		}

		if status < http.StatusBadRequest && (!m.debug || isQuiet(c.Request().URL.Path)) {
			return err
		}

		m.logRequest(c, start, status, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
