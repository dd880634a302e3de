package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeOutcome is the structured result of a subscription charge attempt.
type ChargeOutcome string

const (
	ChargeOutcomeCharged             ChargeOutcome = "charged"
	ChargeOutcomeInsufficientBalance ChargeOutcome = "insufficient_balance"
	ChargeOutcomeMissingSubscription ChargeOutcome = "missing_subscription"
)

// IsValid checks if the outcome is one of the known values.
func (o ChargeOutcome) IsValid() bool {
	switch o {
	case ChargeOutcomeCharged, ChargeOutcomeInsufficientBalance, ChargeOutcomeMissingSubscription:
		return true
	default:
		return false
	}
}

// SubscriptionStatus is the billing state of a merchant subscription.
type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionPastDue SubscriptionStatus = "past_due"
	SubscriptionExpired SubscriptionStatus = "expired"
)

// MerchantDueForCharge is a merchant subscription whose next charge date has passed.
type MerchantDueForCharge struct {
	SubscriptionID uuid.UUID       `json:"subscription_id"`
	MerchantID     uuid.UUID       `json:"merchant_id"`
	OwnerUserID    uuid.UUID       `json:"owner_user_id"`
	PlanName       string          `json:"plan_name"`
	Amount         decimal.Decimal `json:"amount"`
	NextChargeAt   time.Time       `json:"next_charge_at"`
}

// ChargeSummary aggregates one charge_subscriptions run.
type ChargeSummary struct {
	Due                 int `json:"due"`
	Charged             int `json:"charged"`
	InsufficientBalance int `json:"insufficient_balance"`
	MissingSubscription int `json:"missing_subscription"`
	Errors              int `json:"errors"`
	Expired             int `json:"expired"`
}

// Record counts one outcome.
func (s *ChargeSummary) Record(outcome ChargeOutcome) {
	switch outcome {
	case ChargeOutcomeCharged:
		s.Charged++
	case ChargeOutcomeInsufficientBalance:
		s.InsufficientBalance++
	case ChargeOutcomeMissingSubscription:
		s.MissingSubscription++
	default:
		s.Errors++
	}
}

// MerchantBillingNotice is an upcoming subscription charge the merchant owner should hear about.
type MerchantBillingNotice struct {
	MerchantID  uuid.UUID       `json:"merchant_id"`
	OwnerUserID uuid.UUID       `json:"owner_user_id"`
	StoreName   string          `json:"store_name"`
	Amount      decimal.Decimal `json:"amount"`
	DueAt       time.Time       `json:"due_at"`
}

// DriverLowBalanceCandidate is a driver whose wallet fell below the threshold.
type DriverLowBalanceCandidate struct {
	DriverID           uuid.UUID       `json:"driver_id"`
	UserID             uuid.UUID       `json:"user_id"`
	Balance            decimal.Decimal `json:"balance"`
	Threshold          decimal.Decimal `json:"threshold"`
	LastNotificationAt *time.Time      `json:"last_notification_at,omitempty"`
}

// InCooldown reports whether the driver was notified less than window ago.
func (c DriverLowBalanceCandidate) InCooldown(now time.Time, window time.Duration) bool {
	if c.LastNotificationAt == nil {
		return false
	}

	return now.Sub(*c.LastNotificationAt) < window
}

// BillingNotifySummary aggregates one notify_billing run.
type BillingNotifySummary struct {
	MerchantNotices int `json:"merchant_notices"`
	Drivers         int `json:"drivers"`
	DriversSkipped  int `json:"drivers_skipped"`
	DriversNotified int `json:"drivers_notified"`
	Messages        int `json:"messages"`
	FailedBatches   int `json:"failed_batches"`
}
