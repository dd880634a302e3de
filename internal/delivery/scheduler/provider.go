package scheduler

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/delivery"
	"courier/internal/delivery/metrics"
	"courier/internal/domain/constants"
	"courier/internal/infra/redis"
	"courier/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	Redis       *redis.Client `optional:"true"`
	Registry    *prometheus.Registry
	PushMetrics *metrics.PushMetrics
	PushWorker  usecase.PushWorkerUsecase
	Billing     usecase.BillingUsecase
}

// New registers the queue and billing jobs and returns the scheduler as a Delivery.
func New(params Params) (delivery.Delivery, error) {
	svc, err := NewService(ServiceOptions{
		Logger:   params.Logger,
		Registry: NewJobs(params),
		Locks:    RedisLocks(params.Redis, params.Config.Scheduler.LockTTL),
		Metrics:  metrics.NewJobMetrics(params.Registry),
	})
	if err != nil {
		return nil, err
	}

	if params.Redis == nil {
		params.Logger.Warn("Scheduler running without Redis locks; run a single replica")
	}

	params.Lc.Append(fx.Hook{
		OnStop: svc.Stop,
	})

	return svc, nil
}

// NewJobs builds the job set from the scheduler intervals.
func NewJobs(params Params) *Registry {
	cfg := params.Config.Scheduler
	logger := params.Logger

	return NewRegistry(
		NewJob(constants.JobPushDrain, cfg.PushDrainInterval, func(ctx context.Context) error {
			result, err := params.PushWorker.Drain(ctx, 0)
			if err != nil {
				return err
			}
			params.PushMetrics.ObserveDrain(result)
			if result.Claimed > 0 {
				logger.Info("Push queue drained",
					slog.Int("claimed", result.Claimed),
					slog.Int("sent", result.Sent),
					slog.Int("retried", result.Retried),
					slog.Int("failed", result.Failed),
				)
			}

			return nil
		}),
		NewJob(constants.JobReclaimStale, cfg.ReclaimInterval, func(ctx context.Context) error {
			n, err := params.PushWorker.ReclaimStale(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Warn("Reclaimed stale push jobs", slog.Int64("count", n))
			}

			return nil
		}),
		NewJob(constants.JobNotifyBilling, cfg.NotifyBillingInterval, func(ctx context.Context) error {
			summary, err := params.Billing.NotifyBilling(ctx)
			if err != nil {
				return err
			}
			params.PushMetrics.ObserveBillingNotify(summary)

			return nil
		}),
		NewJob(constants.JobChargeSubscriptions, cfg.ChargeInterval, func(ctx context.Context) error {
			summary, err := params.Billing.ChargeSubscriptions(ctx)
			if err != nil {
				return err
			}
			params.PushMetrics.ObserveCharges(summary)

			return nil
		}),
	)
}
