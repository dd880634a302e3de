package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the marketplace status of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is the subset of an order row carried by change events.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	MerchantID  uuid.UUID       `json:"merchant_id"`
	DriverID    *uuid.UUID      `json:"driver_id,omitempty"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Address     string          `json:"delivery_address,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderOffer is a delivery offer sent to a driver.
type OrderOffer struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ChangeEventType is the row operation reported by the change stream.
type ChangeEventType string

const (
	ChangeInsert ChangeEventType = "INSERT"
	ChangeUpdate ChangeEventType = "UPDATE"
	ChangeDelete ChangeEventType = "DELETE"
	// ChangeAll subscribes to every operation; it never appears on a delivered event.
	ChangeAll ChangeEventType = "*"
)

// OrderEvent is an order change delivered to the realtime callback.
type OrderEvent struct {
	Type  ChangeEventType `json:"eventType"`
	Order *Order          `json:"order"`
}
