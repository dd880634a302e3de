package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// BridgeState is the subscription state of an OrderBridge.
type BridgeState string

const (
	BridgeUnsubscribed BridgeState = "unsubscribed"
	BridgeSubscribing  BridgeState = "subscribing"
	BridgeActive       BridgeState = "active"
)

// BridgeParams identify whose orders to follow.
type BridgeParams struct {
	UserID   string
	Role     entity.Role
	StoreIDs []string
}

// OrderCallback receives every normalized order event.
type OrderCallback func(eventType entity.ChangeEventType, order *entity.Order)

// OrderBridge keeps one role-scoped set of order subscriptions open.
type OrderBridge interface {
	// Update re-subscribes when user, role or store set changed; otherwise it is a no-op.
	Update(ctx context.Context, params BridgeParams) error

	// Close leaves every open subscription.
	Close(ctx context.Context) error

	// State returns the current subscription state.
	State() BridgeState
}
