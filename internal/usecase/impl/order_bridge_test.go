package impl

import (
	"context"
	"encoding/json"
	"testing"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receivedEvent struct {
	eventType entity.ChangeEventType
	order     *entity.Order
}

type bridgeHarness struct {
	bridge   usecase.OrderBridge
	stream   *mockSvc.MockChangeStream
	orders   *mockRepo.MockOrderRepository
	sound    *mockSvc.MockSoundPlayer
	handlers map[string]func(service.ChangeEvent)
	filters  []service.ChangeFilter
	// trace records sound plays, callbacks and unsubscribes in order.
	trace  []string
	events []receivedEvent
}

func newBridgeHarness(t *testing.T) *bridgeHarness {
	t.Helper()

	h := &bridgeHarness{
		stream:   mockSvc.NewMockChangeStream(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		sound:    mockSvc.NewMockSoundPlayer(t),
		handlers: map[string]func(service.ChangeEvent){},
	}

	h.bridge = NewOrderBridge(OrderBridgeParams{
		Stream: h.stream,
		Orders: h.orders,
		Sound:  h.sound,
		Callback: func(eventType entity.ChangeEventType, order *entity.Order) {
			h.trace = append(h.trace, "callback")
			h.events = append(h.events, receivedEvent{eventType: eventType, order: order})
		},
	})

	return h
}

// expectSubscribe accepts any filter and returns a subscription that records its own unsubscribe.
func (h *bridgeHarness) expectSubscribe(t *testing.T) {
	t.Helper()

	h.stream.EXPECT().
		Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, filter service.ChangeFilter, handler func(service.ChangeEvent)) (service.Subscription, error) {
			topic := filter.Table + ":" + filter.Filter
			h.filters = append(h.filters, filter)
			h.handlers[topic] = handler

			sub := mockSvc.NewMockSubscription(t)
			sub.EXPECT().Topic().Return(topic).Maybe()
			sub.EXPECT().Unsubscribe(mock.Anything).RunAndReturn(func(context.Context) error {
				h.trace = append(h.trace, "unsubscribe:"+topic)

				return nil
			}).Maybe()

			return sub, nil
		})
}

func (h *bridgeHarness) expectSound() {
	h.sound.EXPECT().Play(mock.Anything).RunAndReturn(func(context.Context) error {
		h.trace = append(h.trace, "sound")

		return nil
	})
}

func orderJSON(t *testing.T, fields map[string]any) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(fields)
	require.NoError(t, err)

	return raw
}

func TestOrderBridge_Driver(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	h.expectSound()
	ctx := context.Background()

	driverID := uuid.New()
	offerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderReady}

	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: driverID.String(), Role: entity.RoleDriver}))
	assert.Equal(t, usecase.BridgeActive, h.bridge.State())

	require.Len(t, h.filters, 2)
	assert.Equal(t, service.ChangeFilter{
		Schema: "public", Table: "order_offers", Event: entity.ChangeInsert, Filter: "driver_id=eq." + driverID.String(),
	}, h.filters[0])
	assert.Equal(t, service.ChangeFilter{
		Schema: "public", Table: "orders", Event: entity.ChangeUpdate, Filter: "driver_id=eq." + driverID.String(),
	}, h.filters[1])

	h.orders.EXPECT().FindOrderForOffer(mock.Anything, offerID, driverID).Return(order, nil)

	h.handlers["order_offers:driver_id=eq."+driverID.String()](service.ChangeEvent{
		Type:   entity.ChangeInsert,
		Table:  "order_offers",
		Record: orderJSON(t, map[string]any{"id": offerID, "order_id": order.ID, "driver_id": driverID}),
	})

	require.Len(t, h.events, 1)
	assert.Equal(t, entity.ChangeInsert, h.events[0].eventType)
	assert.Same(t, order, h.events[0].order)
	assert.Equal(t, []string{"sound", "callback"}, h.trace)
}

func TestOrderBridge_Driver_OfferLookupFailureDropsEvent(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	driverID := uuid.New()
	offerID := uuid.New()

	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: driverID.String(), Role: entity.RoleDriver}))

	h.orders.EXPECT().FindOrderForOffer(mock.Anything, offerID, driverID).Return(nil, errors.New("order not found"))

	h.handlers["order_offers:driver_id=eq."+driverID.String()](service.ChangeEvent{
		Type:   entity.ChangeInsert,
		Record: orderJSON(t, map[string]any{"id": offerID}),
	})

	assert.Empty(t, h.events)
	h.sound.AssertNotCalled(t, "Play", mock.Anything)
}

func TestOrderBridge_Driver_InvalidID(t *testing.T) {
	h := newBridgeHarness(t)

	err := h.bridge.Update(context.Background(), usecase.BridgeParams{UserID: "not-a-uuid", Role: entity.RoleDriver})
	require.Error(t, err)
	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
}

func TestOrderBridge_Merchant(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	h.expectSound()
	ctx := context.Background()

	storeA, storeB := uuid.New(), uuid.New()
	params := usecase.BridgeParams{UserID: uuid.NewString(), Role: entity.RoleMerchant, StoreIDs: []string{storeA.String(), storeB.String()}}

	require.NoError(t, h.bridge.Update(ctx, params))

	require.Len(t, h.filters, 1)
	filter := "merchant_id=in.(" + storeA.String() + "," + storeB.String() + ")"
	assert.Equal(t, entity.ChangeAll, h.filters[0].Event)
	assert.Equal(t, filter, h.filters[0].Filter)

	orderID := uuid.New()
	h.handlers["orders:"+filter](service.ChangeEvent{
		Type:      entity.ChangeDelete,
		Table:     "orders",
		Record:    json.RawMessage(`{}`),
		OldRecord: orderJSON(t, map[string]any{"id": orderID, "merchant_id": storeA, "status": "cancelled", "total": "42.50"}),
	})

	require.Len(t, h.events, 1)
	assert.Equal(t, entity.ChangeDelete, h.events[0].eventType)
	assert.Equal(t, orderID, h.events[0].order.ID)
	assert.Equal(t, entity.OrderCancelled, h.events[0].order.Status)
	assert.Equal(t, "42.5", h.events[0].order.Total.String())
}

func TestOrderBridge_Merchant_NoStoresSkips(t *testing.T) {
	h := newBridgeHarness(t)

	err := h.bridge.Update(context.Background(), usecase.BridgeParams{UserID: uuid.NewString(), Role: entity.RoleMerchant})
	require.NoError(t, err)

	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
	h.stream.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderBridge_Customer(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	h.expectSound()
	ctx := context.Background()

	customerID := uuid.New()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: customerID.String(), Role: entity.RoleCustomer}))

	require.Len(t, h.filters, 1)
	assert.Equal(t, entity.ChangeUpdate, h.filters[0].Event)
	assert.Equal(t, "customer_id=eq."+customerID.String(), h.filters[0].Filter)

	driverID := uuid.New()
	h.handlers["orders:customer_id=eq."+customerID.String()](service.ChangeEvent{
		Type: entity.ChangeUpdate,
		Record: orderJSON(t, map[string]any{
			"id":          uuid.New(),
			"customer_id": customerID,
			"driver_id":   driverID,
			"status":      "picked_up",
			"created_at":  "2025-05-01T10:00:00.123456+00:00",
			"updated_at":  "2025-05-01 10:30:00",
		}),
	})

	require.Len(t, h.events, 1)
	order := h.events[0].order
	assert.Equal(t, entity.OrderPickedUp, order.Status)
	require.NotNil(t, order.DriverID)
	assert.Equal(t, driverID, *order.DriverID)
	assert.Equal(t, 2025, order.CreatedAt.Year())
	assert.Equal(t, 30, order.UpdatedAt.Minute())
}

func TestOrderBridge_MalformedEventDropped(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	customerID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: customerID, Role: entity.RoleCustomer}))

	handler := h.handlers["orders:customer_id=eq."+customerID]
	handler(service.ChangeEvent{Type: entity.ChangeUpdate, Record: json.RawMessage(`not json`)})
	handler(service.ChangeEvent{Type: entity.ChangeUpdate, Record: json.RawMessage(`null`)})

	assert.Empty(t, h.events)
}

func TestOrderBridge_SoundFailureStillCallsBack(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	h.sound.EXPECT().Play(mock.Anything).Return(errors.New("no audio device"))
	ctx := context.Background()

	customerID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: customerID, Role: entity.RoleCustomer}))

	h.handlers["orders:customer_id=eq."+customerID](service.ChangeEvent{
		Type:   entity.ChangeUpdate,
		Record: orderJSON(t, map[string]any{"id": uuid.New()}),
	})

	assert.Len(t, h.events, 1)
}

func TestOrderBridge_SkipsWithoutUser(t *testing.T) {
	h := newBridgeHarness(t)

	require.NoError(t, h.bridge.Update(context.Background(), usecase.BridgeParams{Role: entity.RoleCustomer}))
	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
}

func TestOrderBridge_SkipsUnknownRole(t *testing.T) {
	h := newBridgeHarness(t)

	require.NoError(t, h.bridge.Update(context.Background(), usecase.BridgeParams{UserID: uuid.NewString(), Role: "admin"}))
	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
}

func TestOrderBridge_SameParamsDoNotResubscribe(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	userID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleMerchant, StoreIDs: []string{"s1", "s2"}}))
	// A new slice with equal contents.
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleMerchant, StoreIDs: []string{"s1", "s2"}}))

	assert.Len(t, h.filters, 1)
	assert.Empty(t, h.trace)
}

func TestOrderBridge_StoreChangeUnsubscribesFirst(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	userID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleMerchant, StoreIDs: []string{"s1"}}))

	h.stream.ExpectedCalls = nil
	h.stream.EXPECT().
		Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, filter service.ChangeFilter, _ func(service.ChangeEvent)) (service.Subscription, error) {
			h.trace = append(h.trace, "subscribe:"+filter.Filter)
			sub := mockSvc.NewMockSubscription(t)
			sub.EXPECT().Unsubscribe(mock.Anything).Return(nil).Maybe()

			return sub, nil
		})

	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleMerchant, StoreIDs: []string{"s1", "s2"}}))

	assert.Equal(t, []string{
		"unsubscribe:orders:merchant_id=in.(s1)",
		"subscribe:merchant_id=in.(s1,s2)",
	}, h.trace)
	assert.Equal(t, usecase.BridgeActive, h.bridge.State())
}

func TestOrderBridge_RoleChangeToSkipLeavesPrevious(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	userID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleCustomer}))
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleMerchant}))

	assert.Equal(t, []string{"unsubscribe:orders:customer_id=eq." + userID}, h.trace)
	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
}

func TestOrderBridge_DriverPartialFailureReleasesOffers(t *testing.T) {
	h := newBridgeHarness(t)
	ctx := context.Background()

	offers := mockSvc.NewMockSubscription(t)
	offers.EXPECT().Unsubscribe(mock.Anything).Return(nil).Once()

	h.stream.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).Return(offers, nil).Once()
	h.stream.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("channel error")).Once()

	err := h.bridge.Update(ctx, usecase.BridgeParams{UserID: uuid.NewString(), Role: entity.RoleDriver})
	require.Error(t, err)
	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
}

func TestOrderBridge_Close(t *testing.T) {
	h := newBridgeHarness(t)
	h.expectSubscribe(t)
	ctx := context.Background()

	userID := uuid.NewString()
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleCustomer}))
	require.NoError(t, h.bridge.Close(ctx))

	assert.Equal(t, usecase.BridgeUnsubscribed, h.bridge.State())
	assert.Equal(t, []string{"unsubscribe:orders:customer_id=eq." + userID}, h.trace)

	// Subscribing again after Close is allowed.
	require.NoError(t, h.bridge.Update(ctx, usecase.BridgeParams{UserID: userID, Role: entity.RoleCustomer}))
	assert.Equal(t, usecase.BridgeActive, h.bridge.State())
}
