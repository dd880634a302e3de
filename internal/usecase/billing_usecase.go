package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// BillingUsecase defines the scheduled billing runs
type BillingUsecase interface {
	// ChargeSubscriptions charges every due merchant once, then expires overdue subscriptions.
	ChargeSubscriptions(ctx context.Context) (*entity.ChargeSummary, error)

	// NotifyBilling pushes upcoming-charge reminders to merchants and low-balance alerts to drivers.
	NotifyBilling(ctx context.Context) (*entity.BillingNotifySummary, error)
}
