package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
	"courier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultDriverCooldown = 12 * time.Hour
	defaultUpcomingWindow = 72 * time.Hour
	defaultGraceDays      = 7
	billingDateLayout     = "2006-01-02"

	notificationTypeBillingUpcoming  = "billing_upcoming"
	notificationTypeDriverLowBalance = "driver_low_balance"
)

var defaultLowBalanceThreshold = decimal.NewFromInt(50)

type billingService struct {
	billing repository.BillingRepository
	tokens  repository.PushTokenRepository
	gateway service.PushGateway
	logger  *slog.Logger
	now     func() time.Time

	driverCooldown      time.Duration
	upcomingWindow      time.Duration
	graceDays           int
	lowBalanceThreshold decimal.Decimal
	gatewayBatchSize    int
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	Billing repository.BillingRepository
	Tokens  repository.PushTokenRepository
	Gateway service.PushGateway
	Config  *config.Config
	Logger  *slog.Logger
}

// NewBillingService creates a new billing service instance
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	svc := &billingService{
		billing:             params.Billing,
		tokens:              params.Tokens,
		gateway:             params.Gateway,
		logger:              params.Logger,
		now:                 time.Now,
		driverCooldown:      defaultDriverCooldown,
		upcomingWindow:      defaultUpcomingWindow,
		graceDays:           defaultGraceDays,
		lowBalanceThreshold: defaultLowBalanceThreshold,
		gatewayBatchSize:    defaultGatewayBatchSize,
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if params.Config != nil && params.Config.Billing != nil {
		b := params.Config.Billing
		if b.DriverCooldown > 0 {
			svc.driverCooldown = b.DriverCooldown
		}
		if b.UpcomingWindow > 0 {
			svc.upcomingWindow = b.UpcomingWindow
		}
		if b.GraceDays > 0 {
			svc.graceDays = b.GraceDays
		}
		if threshold, err := decimal.NewFromString(b.LowBalanceThreshold); err == nil {
			svc.lowBalanceThreshold = threshold
		} else if b.LowBalanceThreshold != "" {
			svc.logger.Warn("Invalid low balance threshold, using default",
				slog.String("value", b.LowBalanceThreshold),
				slog.String("default", defaultLowBalanceThreshold.String()),
			)
		}
	}

	return svc
}

// ChargeSubscriptions charges every due merchant once and then expires long-overdue subscriptions.
// A failed charge is counted and the run moves on; nothing is retried within the run.
func (s *billingService) ChargeSubscriptions(ctx context.Context) (*entity.ChargeSummary, error) {
	now := s.now()

	due, err := s.billing.FindMerchantsDueForCharge(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find merchants due for charge")
	}

	summary := &entity.ChargeSummary{Due: len(due)}

	for _, sub := range due {
		outcome, err := s.billing.ChargeSubscription(ctx, sub.SubscriptionID, now)
		if err != nil {
			summary.Errors++
			s.logger.Error("Failed to charge subscription",
				slog.String("subscription_id", sub.SubscriptionID.String()),
				slog.String("merchant_id", sub.MerchantID.String()),
				slog.Any("error", err),
			)

			continue
		}

		if !outcome.IsValid() {
			s.logger.Warn("Unknown charge outcome",
				slog.String("subscription_id", sub.SubscriptionID.String()),
				slog.String("outcome", string(outcome)),
			)
		}
		summary.Record(outcome)
	}

	expired, err := s.billing.ExpireOverdueSubscriptions(ctx, now.AddDate(0, 0, -s.graceDays))
	if err != nil {
		summary.Errors++
		s.logger.Error("Failed to expire overdue subscriptions", slog.Any("error", err))
	}
	summary.Expired = int(expired)

	s.logger.Info("Subscription charge run finished",
		slog.Int("due", summary.Due),
		slog.Int("charged", summary.Charged),
		slog.Int("insufficient_balance", summary.InsufficientBalance),
		slog.Int("missing_subscription", summary.MissingSubscription),
		slog.Int("errors", summary.Errors),
		slog.Int("expired", summary.Expired),
	)

	return summary, nil
}

// billingMessage ties an outbound message to the driver it notifies, if any.
type billingMessage struct {
	msg      *entity.PushMessage
	driverID *uuid.UUID
}

// NotifyBilling reminds merchant owners of upcoming charges and alerts low-balance drivers.
// last_notification_at moves only for drivers with at least one accepted message.
func (s *billingService) NotifyBilling(ctx context.Context) (*entity.BillingNotifySummary, error) {
	now := s.now()

	notices, err := s.billing.FindUpcomingMerchantBilling(ctx, now, now.Add(s.upcomingWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming merchant billing")
	}

	drivers, err := s.billing.FindLowBalanceDrivers(ctx, s.lowBalanceThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low balance drivers")
	}

	summary := &entity.BillingNotifySummary{
		MerchantNotices: len(notices),
		Drivers:         len(drivers),
	}

	eligible := make([]*entity.DriverLowBalanceCandidate, 0, len(drivers))
	for _, driver := range drivers {
		if driver.InCooldown(now, s.driverCooldown) {
			summary.DriversSkipped++

			continue
		}
		eligible = append(eligible, driver)
	}

	userIDs := make([]uuid.UUID, 0, len(notices)+len(eligible))
	for _, notice := range notices {
		userIDs = append(userIDs, notice.OwnerUserID)
	}
	for _, driver := range eligible {
		userIDs = append(userIDs, driver.UserID)
	}

	targets, err := resolvePushTargets(ctx, s.tokens, s.logger, userIDs)
	if err != nil {
		return nil, err
	}

	messages := make([]billingMessage, 0, len(userIDs))
	for _, notice := range notices {
		for _, token := range targets[notice.OwnerUserID] {
			messages = append(messages, billingMessage{msg: merchantBillingMessage(notice, token)})
		}
	}
	for _, driver := range eligible {
		driverID := driver.DriverID
		for _, token := range targets[driver.UserID] {
			messages = append(messages, billingMessage{msg: driverLowBalanceMessage(driver, token), driverID: &driverID})
		}
	}
	summary.Messages = len(messages)

	notified := make(map[uuid.UUID]struct{})
	var invalidTokens []string

	for _, chunk := range util.Chunk(messages, s.gatewayBatchSize) {
		batch := make([]*entity.PushMessage, 0, len(chunk))
		for _, m := range chunk {
			batch = append(batch, m.msg)
		}

		res, err := s.gateway.Send(ctx, batch)
		if res != nil {
			invalidTokens = append(invalidTokens, res.InvalidTokens...)
		}
		if err != nil {
			summary.FailedBatches++
			s.logger.Warn("Billing push batch failed", slog.Int("size", len(batch)), slog.Any("error", err))

			continue
		}

		for _, m := range chunk {
			if m.driverID != nil {
				notified[*m.driverID] = struct{}{}
			}
		}
	}

	if len(notified) > 0 {
		// Keep the candidate order so the touched set is deterministic.
		driverIDs := make([]uuid.UUID, 0, len(notified))
		for _, driver := range eligible {
			if _, ok := notified[driver.DriverID]; ok {
				driverIDs = append(driverIDs, driver.DriverID)
			}
		}

		if err := s.billing.TouchDriversNotified(ctx, driverIDs, now); err != nil {
			s.logger.Error("Failed to update driver notification time", slog.Any("error", err), slog.Int("drivers", len(driverIDs)))
		}
	}
	summary.DriversNotified = len(notified)

	if invalidTokens = util.Unique(invalidTokens); len(invalidTokens) > 0 {
		if err := s.tokens.DeactivateTokens(ctx, invalidTokens); err != nil {
			s.logger.Warn("Failed to deactivate invalid push tokens", slog.Any("error", err))
		}
	}

	s.logger.Info("Billing notification run finished",
		slog.Int("merchant_notices", summary.MerchantNotices),
		slog.Int("drivers", summary.Drivers),
		slog.Int("drivers_skipped", summary.DriversSkipped),
		slog.Int("drivers_notified", summary.DriversNotified),
		slog.Int("messages", summary.Messages),
		slog.Int("failed_batches", summary.FailedBatches),
	)

	return summary, nil
}

func merchantBillingMessage(notice *entity.MerchantBillingNotice, token string) *entity.PushMessage {
	return &entity.PushMessage{
		To:    token,
		Title: "Subscription renewal",
		Body: fmt.Sprintf("%s: your subscription of %s will be charged on %s. Keep your wallet topped up.",
			notice.StoreName, notice.Amount.StringFixed(2), notice.DueAt.Format(billingDateLayout)),
		Sound: pushSound,
		Data: map[string]any{
			"type":        notificationTypeBillingUpcoming,
			"merchant_id": notice.MerchantID.String(),
			"due_at":      notice.DueAt.Format(time.RFC3339),
		},
	}
}

func driverLowBalanceMessage(driver *entity.DriverLowBalanceCandidate, token string) *entity.PushMessage {
	return &entity.PushMessage{
		To:    token,
		Title: "Low wallet balance",
		Body: fmt.Sprintf("Your balance is %s, below the minimum of %s. Top up to keep receiving orders.",
			driver.Balance.StringFixed(2), driver.Threshold.StringFixed(2)),
		Sound: pushSound,
		Data: map[string]any{
			"type":      notificationTypeDriverLowBalance,
			"driver_id": driver.DriverID.String(),
		},
	}
}
