package repository

import (
	"context"
	"time"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRepository covers merchant subscription charging and driver wallet queries.
type BillingRepository interface {
	// FindMerchantsDueForCharge returns active subscriptions whose next charge is at or before now.
	FindMerchantsDueForCharge(ctx context.Context, now time.Time) ([]*entity.MerchantDueForCharge, error)

	// ChargeSubscription debits the merchant wallet for one period and advances the next charge date.
	// Business outcomes are returned as values; err is reserved for infrastructure failures.
	ChargeSubscription(ctx context.Context, subscriptionID uuid.UUID, now time.Time) (entity.ChargeOutcome, error)

	// ExpireOverdueSubscriptions marks subscriptions unpaid since before overdueBefore as expired.
	ExpireOverdueSubscriptions(ctx context.Context, overdueBefore time.Time) (int64, error)

	// FindUpcomingMerchantBilling returns charges due within [from, to).
	FindUpcomingMerchantBilling(ctx context.Context, from, to time.Time) ([]*entity.MerchantBillingNotice, error)

	// FindLowBalanceDrivers returns drivers whose wallet balance is below threshold.
	FindLowBalanceDrivers(ctx context.Context, threshold decimal.Decimal) ([]*entity.DriverLowBalanceCandidate, error)

	// TouchDriversNotified sets last_notification_at for the given drivers.
	TouchDriversNotified(ctx context.Context, driverIDs []uuid.UUID, at time.Time) error
}
