package postgres

import (
	"context"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	walletKindSubscription = "subscription_charge"
	billingPeriodMonths    = 1
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

// merchantChargeRow is the join of a subscription with its store.
type merchantChargeRow struct {
	SubscriptionID uuid.UUID
	MerchantID     uuid.UUID
	OwnerUserID    uuid.UUID
	StoreName      string
	PlanName       string
	Price          decimal.Decimal
	NextChargeAt   time.Time
}

func (repo *billingRepository) subscriptionsWithStores(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("merchant_subscriptions AS ms").
		Select(`ms.id AS subscription_id, ms.merchant_id, s.owner_user_id, s.name AS store_name,
			ms.plan_name, ms.price, ms.next_charge_at`).
		Joins("JOIN stores AS s ON s.id = ms.merchant_id")
}

// FindMerchantsDueForCharge includes past-due subscriptions so they are retried until they expire.
func (repo *billingRepository) FindMerchantsDueForCharge(ctx context.Context, now time.Time) ([]*entity.MerchantDueForCharge, error) {
	var rows []merchantChargeRow

	if err := repo.subscriptionsWithStores(ctx).
		Where("ms.status IN ? AND ms.next_charge_at <= ?",
			[]string{string(entity.SubscriptionActive), string(entity.SubscriptionPastDue)}, now).
		Order("ms.next_charge_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchants due for charge")
	}

	due := make([]*entity.MerchantDueForCharge, 0, len(rows))
	for _, row := range rows {
		due = append(due, &entity.MerchantDueForCharge{
			SubscriptionID: row.SubscriptionID,
			MerchantID:     row.MerchantID,
			OwnerUserID:    row.OwnerUserID,
			PlanName:       row.PlanName,
			Amount:         row.Price,
			NextChargeAt:   row.NextChargeAt,
		})
	}

	return due, nil
}

// ChargeSubscription locks the subscription and the owner's wallet, then debits one period.
func (repo *billingRepository) ChargeSubscription(ctx context.Context, subscriptionID uuid.UUID, now time.Time) (entity.ChargeOutcome, error) {
	var outcome entity.ChargeOutcome

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub model.MerchantSubscriptionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status IN ? AND next_charge_at <= ?", subscriptionID,
				[]string{string(entity.SubscriptionActive), string(entity.SubscriptionPastDue)}, now).
			Take(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Expired, deleted, or already charged by a concurrent run.
				outcome = entity.ChargeOutcomeMissingSubscription

				return nil
			}

			return errors.Wrap(err, "failed to lock subscription")
		}

		var store model.StoreModel
		if err := tx.Select("id", "owner_user_id").Where("id = ?", sub.MerchantID).Take(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = entity.ChargeOutcomeMissingSubscription

				return nil
			}

			return errors.Wrap(err, "failed to load store")
		}

		var wallet model.WalletModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_user_id = ?", store.OwnerUserID).
			Take(&wallet).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "failed to lock wallet")
		}

		if err != nil || wallet.Balance.LessThan(sub.Price) {
			outcome = entity.ChargeOutcomeInsufficientBalance

			return repo.markPastDue(tx, &sub, now)
		}

		if err := tx.Model(&wallet).Updates(map[string]any{
			"balance":    wallet.Balance.Sub(sub.Price),
			"updated_at": now,
		}).Error; err != nil {
			return errors.Wrap(err, "failed to debit wallet")
		}

		if err := tx.Create(&model.WalletTransactionModel{
			WalletID:    wallet.ID,
			Amount:      sub.Price.Neg(),
			Kind:        walletKindSubscription,
			ReferenceID: &sub.ID,
			CreatedAt:   now,
		}).Error; err != nil {
			return errors.Wrap(err, "failed to record wallet transaction")
		}

		if err := tx.Model(&sub).Updates(map[string]any{
			"status":          entity.SubscriptionActive,
			"next_charge_at":  sub.NextChargeAt.AddDate(0, billingPeriodMonths, 0),
			"last_charged_at": now,
			"past_due_since":  nil,
			"updated_at":      now,
		}).Error; err != nil {
			return errors.Wrap(err, "failed to advance subscription")
		}

		outcome = entity.ChargeOutcomeCharged

		return nil
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// markPastDue keeps the first past_due_since so the grace period is not reset by every retry.
func (repo *billingRepository) markPastDue(tx *gorm.DB, sub *model.MerchantSubscriptionModel, now time.Time) error {
	updates := map[string]any{
		"status":     entity.SubscriptionPastDue,
		"updated_at": now,
	}
	if sub.PastDueSince == nil {
		updates["past_due_since"] = now
	}

	if err := tx.Model(sub).Updates(updates).Error; err != nil {
		return errors.Wrap(err, "failed to mark subscription past due")
	}

	return nil
}

// ExpireOverdueSubscriptions expires past-due subscriptions whose grace period ended.
func (repo *billingRepository) ExpireOverdueSubscriptions(ctx context.Context, overdueBefore time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantSubscriptionModel{}).
		Where("status = ? AND past_due_since < ?", entity.SubscriptionPastDue, overdueBefore).
		Updates(map[string]any{
			"status":     entity.SubscriptionExpired,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to expire overdue subscriptions")
	}

	return result.RowsAffected, nil
}

// FindUpcomingMerchantBilling returns active subscriptions charging within the window.
func (repo *billingRepository) FindUpcomingMerchantBilling(ctx context.Context, from, to time.Time) ([]*entity.MerchantBillingNotice, error) {
	var rows []merchantChargeRow

	if err := repo.subscriptionsWithStores(ctx).
		Where("ms.status = ? AND ms.next_charge_at >= ? AND ms.next_charge_at < ?", entity.SubscriptionActive, from, to).
		Order("ms.next_charge_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming merchant billing")
	}

	notices := make([]*entity.MerchantBillingNotice, 0, len(rows))
	for _, row := range rows {
		notices = append(notices, &entity.MerchantBillingNotice{
			MerchantID:  row.MerchantID,
			OwnerUserID: row.OwnerUserID,
			StoreName:   row.StoreName,
			Amount:      row.Price,
			DueAt:       row.NextChargeAt,
		})
	}

	return notices, nil
}

// FindLowBalanceDrivers returns drivers whose wallet is below threshold. Drivers without a wallet count as zero.
func (repo *billingRepository) FindLowBalanceDrivers(ctx context.Context, threshold decimal.Decimal) ([]*entity.DriverLowBalanceCandidate, error) {
	var rows []struct {
		DriverID           uuid.UUID
		UserID             uuid.UUID
		Balance            decimal.Decimal
		LastNotificationAt *time.Time
	}

	if err := repo.db.WithContext(ctx).
		Table("drivers AS d").
		Select("d.id AS driver_id, d.user_id, COALESCE(w.balance, 0) AS balance, d.last_notification_at").
		Joins("LEFT JOIN wallets AS w ON w.owner_user_id = d.user_id").
		Where("COALESCE(w.balance, 0) < ?", threshold).
		Order("d.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low balance drivers")
	}

	candidates := make([]*entity.DriverLowBalanceCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &entity.DriverLowBalanceCandidate{
			DriverID:           row.DriverID,
			UserID:             row.UserID,
			Balance:            row.Balance,
			Threshold:          threshold,
			LastNotificationAt: row.LastNotificationAt,
		})
	}

	return candidates, nil
}

// TouchDriversNotified stamps last_notification_at to start the cooldown.
func (repo *billingRepository) TouchDriversNotified(ctx context.Context, driverIDs []uuid.UUID, at time.Time) error {
	if len(driverIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DriverModel{}).
		Where("id IN ?", driverIDs).
		Updates(map[string]any{
			"last_notification_at": at,
			"updated_at":           at,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to touch notified drivers")
	}

	return nil
}
