package worker

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courier/config"
	"courier/internal/delivery/metrics"
	"courier/internal/delivery/worker/handler"
	"courier/internal/domain/constants"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/errors"
	mockUc "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e        *echo.Echo
	worker   *mockUc.MockPushWorkerUsecase
	billing  *mockUc.MockBillingUsecase
	notifier *mockUc.MockNotificationUsecase
}

func newFixture(t *testing.T, cronKey string) *fixture {
	t.Helper()

	cfg := &config.Config{
		Worker:  &config.WorkerConfig{Secret: "worker-secret", WebhookSecret: "hook-secret"},
		Billing: &config.BillingConfig{CronKey: cronKey},
		PubSub:  &config.PubSubConfig{Provider: "local"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	f := &fixture{
		worker:   mockUc.NewMockPushWorkerUsecase(t),
		billing:  mockUc.NewMockBillingUsecase(t),
		notifier: mockUc.NewMockNotificationUsecase(t),
	}

	reg := prometheus.NewRegistry()
	pushMetrics := metrics.NewPushMetrics(reg)
	logger := slog.New(slog.DiscardHandler)

	f.e = NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   logger,
		Registry: reg,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:     cfg,
			Logger:     logger,
			PushWorker: f.worker,
			Metrics:    pushMetrics,
		}),
		FunctionHandler: handler.NewFunctionHandler(handler.FunctionHandlerParams{
			Config:     cfg,
			Logger:     logger,
			PushWorker: f.worker,
			Billing:    f.billing,
			Notifier:   f.notifier,
			Metrics:    pushMetrics,
		}),
	})

	return f
}

func (f *fixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestPushWorker(t *testing.T) {
	t.Run("rejects callers without schedule header or secret", func(t *testing.T) {
		f := newFixture(t, "")

		rec := f.do(http.MethodPost, "/functions/push-worker", "", map[string]string{constants.HeaderWorkerSecret: "wrong"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("scheduled call drains with the default batch", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 0).Return(&usecase.DrainResult{Claimed: 3, Sent: 2, Retried: 1, Messages: 4}, nil).Once()

		rec := f.do(http.MethodPost, "/functions/push-worker", "", map[string]string{constants.HeaderScheduled: "true"})
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.DrainResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Claimed)
		assert.Equal(t, 1, got.Retried)
	})

	t.Run("secret caller may override the batch", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 25).Return(&usecase.DrainResult{}, nil).Once()

		rec := f.do(http.MethodPost, "/functions/push-worker?batch=25", "", map[string]string{constants.HeaderWorkerSecret: "worker-secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid batch", func(t *testing.T) {
		f := newFixture(t, "")

		rec := f.do(http.MethodPost, "/functions/push-worker?batch=abc", "", map[string]string{constants.HeaderScheduled: "true"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("drain failure is a 500", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 0).Return(nil, errors.New("db down")).Once()

		rec := f.do(http.MethodPost, "/functions/push-worker", "", map[string]string{constants.HeaderScheduled: "true"})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})
}

func TestReclaimStale(t *testing.T) {
	f := newFixture(t, "")
	f.worker.EXPECT().ReclaimStale(mock.Anything).Return(int64(2), nil).Once()

	rec := f.do(http.MethodPost, "/functions/reclaim-stale", "", map[string]string{constants.HeaderScheduled: "true"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reclaimed":2}`, rec.Body.String())
}

func TestBillingFunctions(t *testing.T) {
	t.Run("cron key is enforced when configured", func(t *testing.T) {
		f := newFixture(t, "cron")

		rec := f.do(http.MethodPost, "/functions/charge-subscriptions", "", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = f.do(http.MethodPost, "/functions/notify-billing", "", map[string]string{constants.HeaderCronKey: "nope"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("charge with matching key", func(t *testing.T) {
		f := newFixture(t, "cron")
		f.billing.EXPECT().ChargeSubscriptions(mock.Anything).Return(&entity.ChargeSummary{Due: 2, Charged: 1, InsufficientBalance: 1}, nil).Once()

		rec := f.do(http.MethodPost, "/functions/charge-subscriptions", "", map[string]string{constants.HeaderCronKey: "cron"})
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.ChargeSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 1, got.InsufficientBalance)
	})

	t.Run("notify billing without a configured key", func(t *testing.T) {
		f := newFixture(t, "")
		f.billing.EXPECT().NotifyBilling(mock.Anything).Return(&entity.BillingNotifySummary{MerchantNotices: 2}, nil).Once()

		rec := f.do(http.MethodPost, "/functions/notify-billing", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNotifyUser(t *testing.T) {
	userID := uuid.New()

	t.Run("unauthorized", func(t *testing.T) {
		f := newFixture(t, "")
		f.notifier.EXPECT().Authorize(mock.Anything, usecase.NotifierCredentials{BearerToken: "tok"}).Return(domainerrors.ErrUnauthorized).Once()

		rec := f.do(http.MethodPost, "/functions/notify-user", `{}`, map[string]string{echo.HeaderAuthorization: "Bearer tok"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("validation failure", func(t *testing.T) {
		f := newFixture(t, "")
		f.notifier.EXPECT().Authorize(mock.Anything, usecase.NotifierCredentials{Secret: "s"}).Return(nil).Once()

		rec := f.do(http.MethodPost, "/functions/notify-user", `{"user_id":"nope","title":"hi"}`, map[string]string{constants.HeaderNotifySecret: "s"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "user_id")
		assert.Contains(t, rec.Body.String(), "body")
	})

	t.Run("enqueues", func(t *testing.T) {
		f := newFixture(t, "")
		notificationID, jobID := uuid.New(), uuid.New()
		f.notifier.EXPECT().Authorize(mock.Anything, mock.Anything).Return(nil).Once()
		f.notifier.EXPECT().NotifyUser(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyUserInput) bool {
			return in.UserID == userID && in.Title == "Order ready" && in.Data["order_id"] == "o-1" && in.RequestID == "req-1"
		})).Return(&usecase.NotifyUserResult{OK: true, Enqueued: true, NotificationID: notificationID, JobID: jobID}, nil).Once()

		body := `{"user_id":"` + userID.String() + `","title":"Order ready","body":"Pick it up","data":{"order_id":"o-1"}}`
		rec := f.do(http.MethodPost, "/functions/notify-user", body, map[string]string{
			constants.HeaderNotifySecret: "s",
			echo.HeaderXRequestID:        "req-1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.NotifyUserResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.OK)
		assert.True(t, got.Enqueued)
		assert.Equal(t, jobID, got.JobID)
	})
}

func TestPushKick(t *testing.T) {
	envelope := func(payload string, attrs map[string]string) string {
		b, _ := json.Marshal(map[string]any{
			"message": map[string]any{
				"data":       base64.StdEncoding.EncodeToString([]byte(payload)),
				"attributes": attrs,
				"messageId":  "m-1",
			},
			"subscription": "projects/p/subscriptions/s",
		})

		return string(b)
	}

	t.Run("drains with the kicked batch size", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 10).Return(&usecase.DrainResult{Claimed: 1, Sent: 1}, nil).Once()

		rec := f.do(http.MethodPost, "/push", envelope(`{"reason":"notify_user","batch_size":10}`, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable drain failure asks for redelivery", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 0).Return(nil, errors.Retryable(errors.New("db down"))).Once()

		rec := f.do(http.MethodPost, "/push", envelope(`{"reason":"notify_user"}`, nil), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent drain failure is acknowledged", func(t *testing.T) {
		f := newFixture(t, "")
		f.worker.EXPECT().Drain(mock.Anything, 0).Return(nil, errors.New("bad config")).Once()

		rec := f.do(http.MethodPost, "/push", envelope(`{"reason":"notify_user"}`, map[string]string{"request_id": "kick-1"}), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		f := newFixture(t, "")

		rec := f.do(http.MethodPost, "/push", envelope(`not json`, nil), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		f := newFixture(t, "")

		rec := f.do(http.MethodPost, "/push", `{"message":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
