package redis

import (
	"context"
	"log/slog"
	"time"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"go.uber.org/fx"
)

const (
	ledgerScope      = "push-delivered"
	defaultLedgerTTL = 24 * time.Hour
)

// deliveryLedger records accepted idempotency keys so retried jobs skip messages already delivered.
type deliveryLedger struct {
	client *Client
	ttl    time.Duration
}

// LedgerParams holds dependencies for the delivery ledger, injected by Fx
type LedgerParams struct {
	fx.In

	Client *Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryLedger returns the Redis ledger, or a no-op one when Redis is off
func NewDeliveryLedger(params LedgerParams) service.DeliveryLedger {
	if params.Client == nil {
		return noopLedger{}
	}

	ttl := defaultLedgerTTL
	if params.Config.Worker != nil && params.Config.Worker.DedupeTTL > 0 {
		ttl = params.Config.Worker.DedupeTTL
	}
	params.Logger.Info("Push dedupe ledger enabled", slog.Duration("ttl", ttl))

	return &deliveryLedger{client: params.Client, ttl: ttl}
}

func (l *deliveryLedger) key(idempotencyKey string) string {
	return l.client.Key(ledgerScope, idempotencyKey)
}

// FilterDelivered looks all keys up in one MGET.
func (l *deliveryLedger) FilterDelivered(ctx context.Context, keys []string) (map[string]bool, error) {
	delivered := make(map[string]bool)
	if len(keys) == 0 {
		return delivered, nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = l.key(k)
	}

	values, err := l.client.MGet(ctx, redisKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delivery ledger")
	}

	for i, value := range values {
		if value != nil && i < len(keys) {
			delivered[keys[i]] = true
		}
	}

	return delivered, nil
}

// MarkDelivered writes each key with SET NX so the first delivery time is kept.
func (l *deliveryLedger) MarkDelivered(ctx context.Context, keys []string) error {
	stamp := time.Now().UTC().Format(time.RFC3339)

	for _, k := range keys {
		if _, err := l.client.SetNX(ctx, l.key(k), stamp, l.ttl); err != nil {
			return errors.Wrap(err, "failed to write delivery ledger")
		}
	}

	return nil
}

// noopLedger never remembers anything, so every retry resends.
type noopLedger struct{}

func (noopLedger) FilterDelivered(context.Context, []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (noopLedger) MarkDelivered(context.Context, []string) error {
	return nil
}
