package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"courier/internal/domain/entity"
	"courier/internal/domain/lifecycle"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errNothingToWatch means the params are well formed but select no rows.
var errNothingToWatch = errors.New("nothing to watch")

// emitFunc hands a normalized order event to the bridge.
type emitFunc func(eventType entity.ChangeEventType, order *entity.Order)

// roleStrategy opens the subscriptions one role needs.
// On error it must have released anything it opened.
type roleStrategy interface {
	Subscribe(ctx context.Context, params usecase.BridgeParams, emit emitFunc) ([]service.Subscription, error)
}

type orderBridge struct {
	strategies map[entity.Role]roleStrategy
	sound      service.SoundPlayer
	callback   usecase.OrderCallback
	logger     *slog.Logger

	mu    sync.Mutex
	state usecase.BridgeState
	key   string
	subs  []service.Subscription
}

// OrderBridgeParams holds dependencies for OrderBridge, injected by Fx.
type OrderBridgeParams struct {
	fx.In

	Stream   service.ChangeStream
	Orders   repository.OrderRepository
	Sound    service.SoundPlayer `optional:"true"`
	Callback usecase.OrderCallback
	Logger   *slog.Logger
}

// NewOrderBridge creates an order bridge with the driver, merchant and customer strategies
func NewOrderBridge(params OrderBridgeParams) usecase.OrderBridge {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orderBridge{
		strategies: map[entity.Role]roleStrategy{
			entity.RoleDriver:   &driverStrategy{stream: params.Stream, orders: params.Orders, logger: logger},
			entity.RoleMerchant: &merchantStrategy{stream: params.Stream, logger: logger},
			entity.RoleCustomer: &customerStrategy{stream: params.Stream, logger: logger},
		},
		sound:    params.Sound,
		callback: params.Callback,
		logger:   logger,
		state:    usecase.BridgeUnsubscribed,
	}
}

// Update re-subscribes when user, role or store set changed
func (b *orderBridge) Update(ctx context.Context, params usecase.BridgeParams) error {
	key := bridgeKey(params)

	b.mu.Lock()
	defer b.mu.Unlock()

	if key == b.key && b.state == usecase.BridgeActive {
		return nil
	}

	// The old channels go first so no event is delivered twice.
	b.unsubscribeAll(ctx)
	b.key = key

	logger := b.logger.With(slog.String("user_id", params.UserID), slog.String("role", params.Role.String()))

	if params.UserID == "" {
		logger.Info("No user, skipping order subscription")

		return nil
	}

	strategy, ok := b.strategies[params.Role]
	if !ok {
		logger.Warn("Unknown role, skipping order subscription")

		return nil
	}

	b.state = usecase.BridgeSubscribing

	subs, err := strategy.Subscribe(ctx, params, b.emit)
	if err != nil {
		b.state = usecase.BridgeUnsubscribed
		if errors.Is(err, errNothingToWatch) {
			logger.Info("Nothing to watch, skipping order subscription")

			return nil
		}

		return errors.Wrap(err, "failed to subscribe to order changes")
	}

	b.subs = subs
	b.state = usecase.BridgeActive
	logger.Info("Subscribed to order changes", slog.Int("channels", len(subs)))

	return nil
}

// Close leaves every open subscription
func (b *orderBridge) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.unsubscribeAll(ctx)
	b.key = ""

	return nil
}

// State returns the current subscription state
func (b *orderBridge) State() usecase.BridgeState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// unsubscribeAll requires b.mu.
func (b *orderBridge) unsubscribeAll(ctx context.Context) {
	for _, sub := range b.subs {
		if err := sub.Unsubscribe(ctx); err != nil {
			b.logger.Warn("Failed to leave order channel", slog.String("topic", sub.Topic()), slog.Any("error", err))
		}
	}

	b.subs = nil
	b.state = usecase.BridgeUnsubscribed
}

// emit plays the alert, best effort, then hands the event to the callback.
func (b *orderBridge) emit(eventType entity.ChangeEventType, order *entity.Order) {
	if b.sound != nil {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		if err := b.sound.Play(ctx); err != nil {
			b.logger.Debug("Failed to play order sound", slog.Any("error", err))
		}
		cancel()
	}

	if b.callback != nil {
		b.callback(eventType, order)
	}
}

// bridgeKey serializes params so equal store lists compare equal regardless of slice identity.
func bridgeKey(params usecase.BridgeParams) string {
	stores, _ := json.Marshal(params.StoreIDs)

	return strings.Join([]string{params.UserID, params.Role.String(), string(stores)}, "|")
}

// unsubscribeQuietly releases subs opened before a later step failed.
func unsubscribeQuietly(ctx context.Context, logger *slog.Logger, subs []service.Subscription) {
	for _, sub := range subs {
		if err := sub.Unsubscribe(ctx); err != nil {
			logger.Warn("Failed to release order channel", slog.String("topic", sub.Topic()), slog.Any("error", err))
		}
	}
}
