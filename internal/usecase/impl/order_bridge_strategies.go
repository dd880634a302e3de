package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/lifecycle"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	changeSchema     = "public"
	ordersTable      = "orders"
	orderOffersTable = "order_offers"
)

// driverStrategy watches new offers for the driver and updates to orders assigned to them.
// Offers carry only ids; the driver cannot read the order row yet, so it is fetched through the offer.
type driverStrategy struct {
	stream service.ChangeStream
	orders repository.OrderRepository
	logger *slog.Logger
}

func (s *driverStrategy) Subscribe(ctx context.Context, params usecase.BridgeParams, emit emitFunc) ([]service.Subscription, error) {
	driverID, err := uuid.Parse(params.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid driver id")
	}

	offers, err := s.stream.Subscribe(ctx, service.ChangeFilter{
		Schema: changeSchema,
		Table:  orderOffersTable,
		Event:  entity.ChangeInsert,
		Filter: "driver_id=eq." + driverID.String(),
	}, func(ev service.ChangeEvent) {
		s.handleOffer(driverID, ev, emit)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to offers")
	}

	assigned, err := s.stream.Subscribe(ctx, service.ChangeFilter{
		Schema: changeSchema,
		Table:  ordersTable,
		Event:  entity.ChangeUpdate,
		Filter: "driver_id=eq." + driverID.String(),
	}, orderHandler(s.logger, emit))
	if err != nil {
		unsubscribeQuietly(ctx, s.logger, []service.Subscription{offers})

		return nil, errors.Wrap(err, "failed to subscribe to assigned orders")
	}

	return []service.Subscription{offers, assigned}, nil
}

func (s *driverStrategy) handleOffer(driverID uuid.UUID, ev service.ChangeEvent, emit emitFunc) {
	var offer struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(ev.Record, &offer); err != nil || offer.ID == uuid.Nil {
		s.logger.Warn("Dropping malformed offer event", slog.Any("error", err))

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	order, err := s.orders.FindOrderForOffer(ctx, offer.ID, driverID)
	if err != nil {
		s.logger.Warn("Failed to load order for offer", slog.String("offer_id", offer.ID.String()), slog.Any("error", err))

		return
	}

	emit(entity.ChangeInsert, order)
}

// merchantStrategy watches every change to orders of the merchant's stores.
type merchantStrategy struct {
	stream service.ChangeStream
	logger *slog.Logger
}

func (s *merchantStrategy) Subscribe(ctx context.Context, params usecase.BridgeParams, emit emitFunc) ([]service.Subscription, error) {
	stores := make([]string, 0, len(params.StoreIDs))
	for _, id := range params.StoreIDs {
		if id = strings.TrimSpace(id); id != "" {
			stores = append(stores, id)
		}
	}

	if len(stores) == 0 {
		return nil, errNothingToWatch
	}

	sub, err := s.stream.Subscribe(ctx, service.ChangeFilter{
		Schema: changeSchema,
		Table:  ordersTable,
		Event:  entity.ChangeAll,
		Filter: fmt.Sprintf("merchant_id=in.(%s)", strings.Join(stores, ",")),
	}, orderHandler(s.logger, emit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to store orders")
	}

	return []service.Subscription{sub}, nil
}

// customerStrategy watches status updates to the customer's own orders.
type customerStrategy struct {
	stream service.ChangeStream
	logger *slog.Logger
}

func (s *customerStrategy) Subscribe(ctx context.Context, params usecase.BridgeParams, emit emitFunc) ([]service.Subscription, error) {
	sub, err := s.stream.Subscribe(ctx, service.ChangeFilter{
		Schema: changeSchema,
		Table:  ordersTable,
		Event:  entity.ChangeUpdate,
		Filter: "customer_id=eq." + params.UserID,
	}, orderHandler(s.logger, emit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to customer orders")
	}

	return []service.Subscription{sub}, nil
}

func orderHandler(logger *slog.Logger, emit emitFunc) func(service.ChangeEvent) {
	return func(ev service.ChangeEvent) {
		order, err := decodeOrder(ev)
		if err != nil {
			logger.Warn("Dropping malformed order event", slog.String("table", ev.Table), slog.Any("error", err))

			return
		}

		emit(ev.Type, order)
	}
}

// orderRecord is an orders row as the change stream serializes it.
type orderRecord struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	MerchantID      uuid.UUID       `json:"merchant_id"`
	DriverID        *uuid.UUID      `json:"driver_id"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	DeliveryAddress string          `json:"delivery_address"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// recordTimeLayouts covers timestamptz as rendered by the stream and by PostgREST.
var recordTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

// decodeOrder reads the new row, or the old one for deletes.
func decodeOrder(ev service.ChangeEvent) (*entity.Order, error) {
	raw := ev.Record
	if isEmptyRecord(raw) {
		raw = ev.OldRecord
	}
	if isEmptyRecord(raw) {
		return nil, errors.New("event carries no record")
	}

	var rec orderRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to decode order record")
	}

	if rec.ID == uuid.Nil {
		return nil, errors.New("order record has no id")
	}

	return &entity.Order{
		ID:          rec.ID,
		CustomerID:  rec.CustomerID,
		MerchantID:  rec.MerchantID,
		DriverID:    rec.DriverID,
		Status:      entity.OrderStatus(rec.Status),
		Total:       rec.Total,
		DeliveryFee: rec.DeliveryFee,
		Address:     rec.DeliveryAddress,
		CreatedAt:   parseRecordTime(rec.CreatedAt),
		UpdatedAt:   parseRecordTime(rec.UpdatedAt),
	}, nil
}

func isEmptyRecord(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))

	return trimmed == "" || trimmed == "null" || trimmed == "{}"
}

func parseRecordTime(value string) time.Time {
	for _, layout := range recordTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}
