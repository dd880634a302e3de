package service

import (
	"context"

	"courier/internal/domain/entity"
)

// PushResult reports what a gateway did with one batch.
type PushResult struct {
	// Accepted counts messages the gateway took responsibility for.
	Accepted int
	// InvalidTokens are tokens the gateway reported as unregistered or malformed.
	InvalidTokens []string
	// AcceptedKeys are idempotency keys of messages that went through when the batch only partly failed.
	AcceptedKeys []string
}

// PushGateway sends one batch of push messages per call.
type PushGateway interface {
	// Send delivers messages in a single outbound request. A non-nil error means the batch failed;
	// a gateway fanning out to several providers may still return a result for the part that was accepted.
	Send(ctx context.Context, messages []*entity.PushMessage) (*PushResult, error)
}

// DeliveryLedger remembers idempotency keys of messages a gateway already accepted.
type DeliveryLedger interface {
	// FilterDelivered returns the subset of keys recorded as delivered.
	FilterDelivered(ctx context.Context, keys []string) (map[string]bool, error)

	// MarkDelivered records keys as delivered for the ledger's retention window.
	MarkDelivered(ctx context.Context, keys []string) error
}
