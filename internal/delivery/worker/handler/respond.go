// Package handler holds the worker's function and Pub/Sub push endpoints.
package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	deliverycontext "courier/internal/delivery/context"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"

	"github.com/labstack/echo/v4"
)

// errorBody is the flat error shape the function endpoints return.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, errorBody{Error: message, RequestID: deliverycontext.GetRequestID(c)})
}

// failWith maps AppErrors to their status and hides everything else behind a 500.
func failWith(c echo.Context, logger *slog.Logger, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		body := errorBody{Error: appErr.Message(), Code: appErr.ErrorCode(), RequestID: deliverycontext.GetRequestID(c)}
		if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
			body.Details = appErr.Details()
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Function failed", slog.Any("error", err))
		}

		return c.JSON(appErr.HTTPCode(), body)
	}

	logger.Error("Function failed", slog.Any("error", err))

	return fail(c, http.StatusInternalServerError, "internal error")
}

// secretMatches compares in constant time; an empty expected secret never matches.
func secretMatches(expected, got string) bool {
	if expected == "" || got == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
