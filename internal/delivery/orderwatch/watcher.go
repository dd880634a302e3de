// Package orderwatch keeps the order bridge subscribed for one configured user and logs every order event.
package orderwatch

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/delivery"
	"courier/internal/domain/entity"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the watcher, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Bridge usecase.OrderBridge
}

type watcher struct {
	params usecase.BridgeParams
	bridge usecase.OrderBridge
	logger *slog.Logger
}

// New validates the watch target and registers a Close hook on the bridge.
func New(params Params) (delivery.Delivery, error) {
	cfg := params.Config.OrderWatch
	if cfg == nil || cfg.UserID == "" {
		return nil, errors.New("orderWatch.userId is required")
	}

	role := entity.Role(cfg.Role)
	if !role.IsValid() {
		return nil, errors.Errorf("orderWatch.role %q is not one of customer, driver, merchant", cfg.Role)
	}

	w := &watcher{
		params: usecase.BridgeParams{
			UserID:   cfg.UserID,
			Role:     role,
			StoreIDs: cfg.StoreIDs,
		},
		bridge: params.Bridge,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// Serve subscribes once; the bridge's transport keeps the subscriptions alive afterwards.
func (w *watcher) Serve(ctx context.Context) error {
	w.logger.Info("Starting order watch",
		slog.String("user_id", w.params.UserID),
		slog.String("role", w.params.Role.String()),
		slog.Int("stores", len(w.params.StoreIDs)),
	)

	if err := w.bridge.Update(ctx, w.params); err != nil {
		return errors.Wrap(err, "subscribe order events")
	}

	w.logger.Info("Order watch active", slog.String("state", string(w.bridge.State())))

	return nil
}

func (w *watcher) stop(ctx context.Context) error {
	w.logger.Info("Stopping order watch")

	return w.bridge.Close(ctx)
}

// NewLogCallback reports each order event on the logger.
func NewLogCallback(logger *slog.Logger) usecase.OrderCallback {
	return func(eventType entity.ChangeEventType, order *entity.Order) {
		if order == nil {
			logger.Warn("Order event without a row", slog.String("event", string(eventType)))

			return
		}

		attrs := []any{
			slog.String("event", string(eventType)),
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(order.Status)),
			slog.String("total", order.Total.StringFixed(2)),
		}
		if order.DriverID != nil {
			attrs = append(attrs, slog.String("driver_id", order.DriverID.String()))
		}

		logger.Info("Order event", attrs...)
	}
}
