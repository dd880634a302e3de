package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"courier/internal/domain/service"
	"courier/internal/errors"

	"github.com/google/uuid"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher POSTs a push envelope straight to a worker, the way a push subscription would.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher for development without Pub/Sub
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// PublishQueueKick delivers the kick synchronously; a non-2xx worker response is an error
func (p *localHTTPPublisher) PublishQueueKick(ctx context.Context, event *service.QueueKickEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope PushEnvelope
	envelope.Subscription = "projects/local/subscriptions/queue-kick"
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = kickAttributes(event)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach local worker")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Queue kick delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("reason", event.Reason),
	)

	return nil
}

// Close is a no-op for the HTTP publisher
func (p *localHTTPPublisher) Close() error {
	return nil
}
