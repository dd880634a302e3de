package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/metrics"
	"courier/internal/domain/constants"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/infra/pubsub"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler drains the queue when a Pub/Sub queue kick arrives.
type PushHandler struct {
	verifyPushAuth bool
	webhookSecret  string
	validate       tokenValidator
	pushWorker     usecase.PushWorkerUsecase
	metrics        *metrics.PushMetrics
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	PushWorker usecase.PushWorkerUsecase
	Metrics    *metrics.PushMetrics
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and develop setups post unsigned envelopes.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		webhookSecret:  params.Config.Worker.WebhookSecret,
		validate:       idtoken.Validate,
		pushWorker:     params.PushWorker,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 on a retryable drain failure so Pub/Sub redelivers, and 200 otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if !secretMatches(h.webhookSecret, req.Header.Get(constants.HeaderWebhookSecret)) && h.verifyPushAuth {
		if err := h.verifyPubSubToken(req); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var kick service.QueueKickEvent
	if err := envelope.Decode(&kick); err != nil {
		// A malformed message will never parse; acknowledge it so it is not redelivered.
		h.logger.Error("[Worker] Dropping undecodable queue kick", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(req.Context(), &envelope, &kick)
	ctx, logger := deliverycontext.Scoped(req.Context(), h.logger, requestID)

	result, err := h.pushWorker.Drain(ctx, kick.BatchSize)
	if err != nil {
		logger.Error("[Worker] Queue kick drain failed",
			slog.String("reason", kick.Reason),
			slog.Bool("retryable", errors.IsRetryable(err)),
			slog.Any("error", err),
		)

		// Jobs stay queued either way; only transient failures are worth a redelivery.
		if errors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}
	h.metrics.ObserveDrain(result)

	logger.Info("[Worker] Queue kick processed",
		slog.String("reason", kick.Reason),
		slog.String("message_id", envelope.Message.MessageID),
		slog.Int("claimed", result.Claimed),
		slog.Int("sent", result.Sent),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the HTTP request ID.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, kick *service.QueueKickEvent) string {
	if id := envelope.Attribute(pubsub.AttrRequestID); id != "" {
		return deliverycontext.NormalizeRequestID(id)
	}

	if kick.RequestID != "" {
		return deliverycontext.NormalizeRequestID(kick.RequestID)
	}

	return deliverycontext.NormalizeRequestID(deliverycontext.GetRequestIDFromContext(ctx))
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token := bearerToken(authHeader)
	if token == "" {
		return errors.New("invalid authorization header format")
	}

	scheme := "https"
	if req.TLS == nil && !strings.EqualFold(req.Header.Get(echo.HeaderXForwardedProto), "https") {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
