package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreModel is the GORM-specific struct for the 'stores' table. A store is the merchant entity.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// WalletModel is the GORM-specific struct for the 'wallets' table; one wallet per user.
type WalletModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Balance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// WalletTransactionModel is an append-only ledger row of the 'wallet_transactions' table.
type WalletTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Kind        string          `gorm:"type:text;not null"`
	ReferenceID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

// MerchantSubscriptionModel is the GORM-specific struct for the 'merchant_subscriptions' table.
type MerchantSubscriptionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MerchantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlanName      string          `gorm:"type:text;not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:text;not null;default:'active'"`
	NextChargeAt  time.Time       `gorm:"not null"`
	LastChargedAt *time.Time
	PastDueSince  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantSubscriptionModel) TableName() string {
	return "merchant_subscriptions"
}

// DriverModel is the GORM-specific struct for the 'drivers' table.
type DriverModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LastNotificationAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "drivers"
}
