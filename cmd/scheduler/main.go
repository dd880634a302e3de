package main

import (
	"context"
	"log/slog"
	"os"

	"courier/config"
	"courier/internal/delivery"
	"courier/internal/delivery/metrics"
	"courier/internal/delivery/scheduler"
	"courier/internal/delivery/worker"
	"courier/internal/delivery/worker/handler"
	"courier/internal/infra/auth"
	logs "courier/internal/infra/log"
	"courier/internal/infra/persistence/postgres"
	"courier/internal/infra/pubsub"
	"courier/internal/infra/push"
	"courier/internal/infra/redis"
	"courier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		redis.New,
		metrics.NewRegistry,
		metrics.NewPushMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewJobQueue,
			postgres.NewPushTokenRepository,
			postgres.NewBillingRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			push.NewGateway,
			pubsub.NewEventPublisher,
			redis.NewDeliveryLedger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPushWorkerService,
			impl.NewBillingService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewFunctionHandler,
		),
	)
}

// injectDelivery runs the job scheduler next to the worker server so /metrics exposes the job counters.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
