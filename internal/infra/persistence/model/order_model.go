package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// MerchantID is the store id; DriverID is the assigned driver's user id.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID        *uuid.UUID      `gorm:"type:uuid;index"`
	Status          string          `gorm:"type:text;not null"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryAddress string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderOfferModel is the GORM-specific struct for the 'order_offers' table.
type OrderOfferModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:text;not null;default:'pending'"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderOfferModel) TableName() string {
	return "order_offers"
}
