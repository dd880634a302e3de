// Package push implements outbound push gateways.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/errors"
)

// MaxExpoBatch is the Expo relay's per-request message limit.
const MaxExpoBatch = 100

const expoDeviceNotRegistered = "DeviceNotRegistered"

// expoGateway posts message batches to the Expo push relay.
type expoGateway struct {
	url         string
	accessToken string
	client      *http.Client
	logger      *slog.Logger
}

// NewExpoGateway creates a gateway for ExponentPushToken[...] targets
func NewExpoGateway(url, accessToken string, timeout time.Duration, logger *slog.Logger) service.PushGateway {
	return &expoGateway{
		url:         url,
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// expoTicket is one entry of the relay's response, aligned with the request order.
type expoTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data   []expoTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Send posts one JSON array. Transport failures, 429 and 5xx are retryable; other non-2xx are not.
func (g *expoGateway) Send(ctx context.Context, messages []*entity.PushMessage) (*service.PushResult, error) {
	if len(messages) == 0 {
		return &service.PushResult{}, nil
	}
	if len(messages) > MaxExpoBatch {
		return nil, errors.Errorf("expo batch of %d exceeds limit %d", len(messages), MaxExpoBatch)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode expo messages")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.accessToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "expo request failed"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "failed to read expo response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := errors.Errorf("expo returned status %d: %s", resp.StatusCode, truncate(raw, 256))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, errors.Retryable(statusErr)
		}

		return nil, statusErr
	}

	return g.readTickets(messages, raw), nil
}

// readTickets counts ok tickets. A 2xx body that cannot be read means the relay took the whole batch.
func (g *expoGateway) readTickets(messages []*entity.PushMessage, raw []byte) *service.PushResult {
	var decoded expoResponse
	if err := json.Unmarshal(raw, &decoded); err != nil || len(decoded.Data) == 0 {
		if g.logger != nil {
			g.logger.Warn("Expo response had no tickets, treating batch as accepted", slog.Int("messages", len(messages)))
		}

		return &service.PushResult{Accepted: len(messages)}
	}

	result := &service.PushResult{}
	for i, ticket := range decoded.Data {
		if ticket.Status == "ok" {
			result.Accepted++

			continue
		}

		if ticket.Details.Error == expoDeviceNotRegistered && i < len(messages) {
			result.InvalidTokens = append(result.InvalidTokens, messages[i].To)
		}
	}

	return result
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}

	return string(raw[:limit]) + "..."
}
