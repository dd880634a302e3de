package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/metrics"
	"courier/internal/delivery/validator"
	"courier/internal/domain/constants"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxBatchOverride = 5000

// FunctionHandlerParams holds dependencies for FunctionHandler, injected by Fx.
type FunctionHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PushWorker usecase.PushWorkerUsecase
	Billing    usecase.BillingUsecase
	Notifier   usecase.NotificationUsecase
	Metrics    *metrics.PushMetrics
}

// FunctionHandler serves the scheduled and on-demand function endpoints.
type FunctionHandler struct {
	pushWorker   usecase.PushWorkerUsecase
	billing      usecase.BillingUsecase
	notifier     usecase.NotificationUsecase
	metrics      *metrics.PushMetrics
	logger       *slog.Logger
	workerSecret string
	cronKey      string
}

// NewFunctionHandler is the constructor for FunctionHandler
func NewFunctionHandler(params FunctionHandlerParams) *FunctionHandler {
	return &FunctionHandler{
		pushWorker:   params.PushWorker,
		billing:      params.Billing,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		logger:       params.Logger,
		workerSecret: params.Config.Worker.Secret,
		cronKey:      params.Config.Billing.CronKey,
	}
}

// NotifyUserRequest is the notify-user body.
type NotifyUserRequest struct {
	UserID string         `json:"user_id" validate:"required,uuid"`
	Title  string         `json:"title" validate:"required,max=200"`
	Body   string         `json:"body" validate:"required,max=2000"`
	Data   map[string]any `json:"data"`
}

// PushWorker drains one batch of the push queue.
// Callers are the platform scheduler (x-scheduled: true) or anyone holding the worker secret.
func (h *FunctionHandler) PushWorker(c echo.Context) error {
	req := c.Request()
	scheduled := strings.EqualFold(req.Header.Get(constants.HeaderScheduled), "true")
	if !scheduled && !secretMatches(h.workerSecret, req.Header.Get(constants.HeaderWorkerSecret)) {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	batchSize := 0
	if raw := c.QueryParam("batch"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxBatchOverride {
			return fail(c, http.StatusBadRequest, "batch must be an integer between 1 and "+strconv.Itoa(maxBatchOverride))
		}
		batchSize = n
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), h.logger)

	result, err := h.pushWorker.Drain(req.Context(), batchSize)
	if err != nil {
		return failWith(c, logger, err)
	}
	h.metrics.ObserveDrain(result)

	logger.Info("Push worker pass finished",
		slog.Bool("scheduled", scheduled),
		slog.Int("claimed", result.Claimed),
		slog.Int("sent", result.Sent),
		slog.Int("retried", result.Retried),
		slog.Int("failed", result.Failed),
		slog.Int("messages", result.Messages),
	)

	return c.JSON(http.StatusOK, result)
}

// ReclaimStale returns stuck processing jobs to the queue. Same auth as PushWorker.
func (h *FunctionHandler) ReclaimStale(c echo.Context) error {
	req := c.Request()
	scheduled := strings.EqualFold(req.Header.Get(constants.HeaderScheduled), "true")
	if !scheduled && !secretMatches(h.workerSecret, req.Header.Get(constants.HeaderWorkerSecret)) {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	n, err := h.pushWorker.ReclaimStale(req.Context())
	if err != nil {
		return failWith(c, deliverycontext.GetLoggerOrDefault(req.Context(), h.logger), err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"reclaimed": n})
}

// ChargeSubscriptions charges every due merchant once.
func (h *FunctionHandler) ChargeSubscriptions(c echo.Context) error {
	if !h.cronAllowed(c) {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	ctx := c.Request().Context()
	summary, err := h.billing.ChargeSubscriptions(ctx)
	if err != nil {
		return failWith(c, deliverycontext.GetLoggerOrDefault(ctx, h.logger), err)
	}
	h.metrics.ObserveCharges(summary)

	return c.JSON(http.StatusOK, summary)
}

// NotifyBilling sends upcoming-charge and low-balance notifications.
func (h *FunctionHandler) NotifyBilling(c echo.Context) error {
	if !h.cronAllowed(c) {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	ctx := c.Request().Context()
	summary, err := h.billing.NotifyBilling(ctx)
	if err != nil {
		return failWith(c, deliverycontext.GetLoggerOrDefault(ctx, h.logger), err)
	}
	h.metrics.ObserveBillingNotify(summary)

	return c.JSON(http.StatusOK, summary)
}

// NotifyUser stores a notification and enqueues its push job.
func (h *FunctionHandler) NotifyUser(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	creds := usecase.NotifierCredentials{
		Secret:      c.Request().Header.Get(constants.HeaderNotifySecret),
		BearerToken: bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)),
	}
	if err := h.notifier.Authorize(ctx, creds); err != nil {
		return failWith(c, logger, err)
	}

	var req NotifyUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON body")
	}

	if err := c.Validate(&req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, errorBody{
				Error:     "validation failed",
				Code:      domainerrors.ErrValidationFailed.ErrorCode(),
				Details:   verr.Fields,
				RequestID: deliverycontext.GetRequestID(c),
			})
		}

		return fail(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.notifier.NotifyUser(ctx, &usecase.NotifyUserInput{
		UserID:    uuid.MustParse(req.UserID),
		Title:     req.Title,
		Body:      req.Body,
		Data:      req.Data,
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return failWith(c, logger, err)
	}

	return c.JSON(http.StatusOK, result)
}

// cronAllowed passes every caller when no cron key is configured.
func (h *FunctionHandler) cronAllowed(c echo.Context) bool {
	if h.cronKey == "" {
		return true
	}

	return secretMatches(h.cronKey, c.Request().Header.Get(constants.HeaderCronKey))
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
