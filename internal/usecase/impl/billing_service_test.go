package impl

import (
	"context"
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var billingNow = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

type billingMocks struct {
	billing *mockRepo.MockBillingRepository
	tokens  *mockRepo.MockPushTokenRepository
	gateway *mockSvc.MockPushGateway
}

func newTestBillingService(t *testing.T, cfg *config.Config) (*billingService, *billingMocks) {
	t.Helper()

	m := &billingMocks{
		billing: mockRepo.NewMockBillingRepository(t),
		tokens:  mockRepo.NewMockPushTokenRepository(t),
		gateway: mockSvc.NewMockPushGateway(t),
	}

	svc := NewBillingService(BillingServiceParams{
		Billing: m.billing,
		Tokens:  m.tokens,
		Gateway: m.gateway,
		Config:  cfg,
	}).(*billingService)
	svc.now = func() time.Time { return billingNow }

	return svc, m
}

func lowBalanceDriver(notifiedAgo time.Duration) *entity.DriverLowBalanceCandidate {
	candidate := &entity.DriverLowBalanceCandidate{
		DriverID:  uuid.New(),
		UserID:    uuid.New(),
		Balance:   decimal.NewFromInt(12),
		Threshold: decimal.NewFromInt(50),
	}
	if notifiedAgo > 0 {
		last := billingNow.Add(-notifiedAgo)
		candidate.LastNotificationAt = &last
	}

	return candidate
}

func TestNewBillingService_Config(t *testing.T) {
	cfg := &config.Config{Billing: &config.BillingConfig{
		DriverCooldown:      6 * time.Hour,
		LowBalanceThreshold: "75.5",
		GraceDays:           3,
	}}
	svc, _ := newTestBillingService(t, cfg)

	assert.Equal(t, 6*time.Hour, svc.driverCooldown)
	assert.True(t, decimal.RequireFromString("75.5").Equal(svc.lowBalanceThreshold))
	assert.Equal(t, 3, svc.graceDays)
}

func TestNewBillingService_InvalidThresholdFallsBack(t *testing.T) {
	svc, _ := newTestBillingService(t, &config.Config{Billing: &config.BillingConfig{LowBalanceThreshold: "fifty"}})

	assert.True(t, defaultLowBalanceThreshold.Equal(svc.lowBalanceThreshold))
	assert.Equal(t, defaultDriverCooldown, svc.driverCooldown)
}

func TestBillingService_ChargeSubscriptions_CountsOutcomes(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	due := []*entity.MerchantDueForCharge{
		{SubscriptionID: uuid.New(), MerchantID: uuid.New()},
		{SubscriptionID: uuid.New(), MerchantID: uuid.New()},
		{SubscriptionID: uuid.New(), MerchantID: uuid.New()},
		{SubscriptionID: uuid.New(), MerchantID: uuid.New()},
	}

	m.billing.EXPECT().FindMerchantsDueForCharge(ctx, billingNow).Return(due, nil)
	m.billing.EXPECT().ChargeSubscription(ctx, due[0].SubscriptionID, billingNow).Return(entity.ChargeOutcomeCharged, nil)
	m.billing.EXPECT().ChargeSubscription(ctx, due[1].SubscriptionID, billingNow).Return(entity.ChargeOutcomeInsufficientBalance, nil)
	m.billing.EXPECT().ChargeSubscription(ctx, due[2].SubscriptionID, billingNow).Return(entity.ChargeOutcomeMissingSubscription, nil)
	m.billing.EXPECT().ChargeSubscription(ctx, due[3].SubscriptionID, billingNow).Return(entity.ChargeOutcome(""), errors.New("deadlock"))
	m.billing.EXPECT().ExpireOverdueSubscriptions(ctx, billingNow.AddDate(0, 0, -defaultGraceDays)).Return(int64(2), nil)

	summary, err := svc.ChargeSubscriptions(ctx)
	require.NoError(t, err)

	assert.Equal(t, &entity.ChargeSummary{
		Due:                 4,
		Charged:             1,
		InsufficientBalance: 1,
		MissingSubscription: 1,
		Errors:              1,
		Expired:             2,
	}, summary)
}

func TestBillingService_ChargeSubscriptions_FindError(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	m.billing.EXPECT().FindMerchantsDueForCharge(ctx, billingNow).Return(nil, errors.New("timeout"))

	summary, err := svc.ChargeSubscriptions(ctx)
	assert.Nil(t, summary)
	assert.ErrorContains(t, err, "failed to find merchants due for charge")
}

func TestBillingService_ChargeSubscriptions_ExpireErrorIsCounted(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	m.billing.EXPECT().FindMerchantsDueForCharge(ctx, billingNow).Return(nil, nil)
	m.billing.EXPECT().ExpireOverdueSubscriptions(ctx, mock.Anything).Return(int64(0), errors.New("lock timeout"))

	summary, err := svc.ChargeSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errors)
	assert.Zero(t, summary.Due)
}

func TestBillingService_NotifyBilling_DriverCooldown(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	recent := lowBalanceDriver(time.Hour)
	stale := lowBalanceDriver(13 * time.Hour)
	never := lowBalanceDriver(0)

	m.billing.EXPECT().FindUpcomingMerchantBilling(ctx, billingNow, billingNow.Add(defaultUpcomingWindow)).Return(nil, nil)
	m.billing.EXPECT().FindLowBalanceDrivers(ctx, defaultLowBalanceThreshold).Return([]*entity.DriverLowBalanceCandidate{recent, stale, never}, nil)
	m.tokens.EXPECT().
		FindActiveTokensByUsers(ctx, []uuid.UUID{stale.UserID, never.UserID}).
		Return([]*entity.PushToken{
			{UserID: stale.UserID, Token: "ExponentPushToken[stale]"},
			{UserID: never.UserID, Token: "ExponentPushToken[never]"},
		}, nil)
	m.tokens.EXPECT().FindLegacyTokensByUsers(ctx, mock.Anything).Return(nil, nil)
	m.gateway.EXPECT().
		Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []*entity.PushMessage) (*service.PushResult, error) {
			require.Len(t, messages, 2)
			for _, msg := range messages {
				assert.Equal(t, "Low wallet balance", msg.Title)
				assert.Equal(t, notificationTypeDriverLowBalance, msg.Data["type"])
				assert.Contains(t, msg.Body, "12.00")
			}

			return &service.PushResult{Accepted: 2}, nil
		})
	m.billing.EXPECT().TouchDriversNotified(ctx, []uuid.UUID{stale.DriverID, never.DriverID}, billingNow).Return(nil)

	summary, err := svc.NotifyBilling(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Drivers)
	assert.Equal(t, 1, summary.DriversSkipped)
	assert.Equal(t, 2, summary.DriversNotified)
	assert.Equal(t, 2, summary.Messages)
}

func TestBillingService_NotifyBilling_DriverWithoutTokensNotTouched(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	driver := lowBalanceDriver(0)

	m.billing.EXPECT().FindUpcomingMerchantBilling(ctx, mock.Anything, mock.Anything).Return(nil, nil)
	m.billing.EXPECT().FindLowBalanceDrivers(ctx, mock.Anything).Return([]*entity.DriverLowBalanceCandidate{driver}, nil)
	m.tokens.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{driver.UserID}).Return(nil, nil)
	m.tokens.EXPECT().FindLegacyTokensByUsers(ctx, []uuid.UUID{driver.UserID}).Return(nil, nil)

	summary, err := svc.NotifyBilling(ctx)
	require.NoError(t, err)

	assert.Zero(t, summary.DriversNotified)
	assert.Zero(t, summary.Messages)
	m.gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	m.billing.AssertNotCalled(t, "TouchDriversNotified", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_NotifyBilling_FailedBatchSkipsTouch(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	ownerID := uuid.New()
	notice := &entity.MerchantBillingNotice{
		MerchantID:  uuid.New(),
		OwnerUserID: ownerID,
		StoreName:   "Shawarma House",
		Amount:      decimal.RequireFromString("99.5"),
		DueAt:       billingNow.Add(48 * time.Hour),
	}
	driver := lowBalanceDriver(20 * time.Hour)

	m.billing.EXPECT().FindUpcomingMerchantBilling(ctx, mock.Anything, mock.Anything).Return([]*entity.MerchantBillingNotice{notice}, nil)
	m.billing.EXPECT().FindLowBalanceDrivers(ctx, mock.Anything).Return([]*entity.DriverLowBalanceCandidate{driver}, nil)
	m.tokens.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{ownerID, driver.UserID}).Return([]*entity.PushToken{
		{UserID: ownerID, Token: "owner-token"},
	}, nil)
	m.tokens.EXPECT().FindLegacyTokensByUsers(ctx, mock.Anything).Return(map[uuid.UUID]string{driver.UserID: "driver-legacy"}, nil)
	m.gateway.EXPECT().
		Send(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, messages []*entity.PushMessage) (*service.PushResult, error) {
			require.Len(t, messages, 2)
			assert.Equal(t, "owner-token", messages[0].To)
			assert.Contains(t, messages[0].Body, "Shawarma House")
			assert.Contains(t, messages[0].Body, "99.50")
			assert.Contains(t, messages[0].Body, "2025-06-12")
			assert.Equal(t, "driver-legacy", messages[1].To)

			return nil, errors.New("503 service unavailable")
		})

	summary, err := svc.NotifyBilling(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FailedBatches)
	assert.Zero(t, summary.DriversNotified)
	m.billing.AssertNotCalled(t, "TouchDriversNotified", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_NotifyBilling_TouchesOnlyAcceptedDrivers(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{Billing: &config.BillingConfig{}})
	svc.gatewayBatchSize = 1
	ctx := context.Background()

	first := lowBalanceDriver(0)
	second := lowBalanceDriver(0)

	m.billing.EXPECT().FindUpcomingMerchantBilling(ctx, mock.Anything, mock.Anything).Return(nil, nil)
	m.billing.EXPECT().FindLowBalanceDrivers(ctx, mock.Anything).Return([]*entity.DriverLowBalanceCandidate{first, second}, nil)
	m.tokens.EXPECT().FindActiveTokensByUsers(ctx, mock.Anything).Return([]*entity.PushToken{
		{UserID: first.UserID, Token: "first"},
		{UserID: second.UserID, Token: "second"},
	}, nil)
	m.tokens.EXPECT().FindLegacyTokensByUsers(ctx, mock.Anything).Return(nil, nil)
	m.gateway.EXPECT().Send(ctx, mock.Anything).Return(&service.PushResult{Accepted: 1, InvalidTokens: []string{"first"}}, nil).Once()
	m.gateway.EXPECT().Send(ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()
	m.billing.EXPECT().TouchDriversNotified(ctx, []uuid.UUID{first.DriverID}, billingNow).Return(nil)
	m.tokens.EXPECT().DeactivateTokens(ctx, []string{"first"}).Return(nil)

	summary, err := svc.NotifyBilling(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.DriversNotified)
	assert.Equal(t, 1, summary.FailedBatches)
}

func TestBillingService_NotifyBilling_QueryError(t *testing.T) {
	svc, m := newTestBillingService(t, &config.Config{})
	ctx := context.Background()

	m.billing.EXPECT().FindUpcomingMerchantBilling(ctx, mock.Anything, mock.Anything).Return(nil, nil)
	m.billing.EXPECT().FindLowBalanceDrivers(ctx, mock.Anything).Return(nil, errors.New("relation does not exist"))

	summary, err := svc.NotifyBilling(ctx)
	assert.Nil(t, summary)
	assert.ErrorContains(t, err, "failed to find low balance drivers")
}
