package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"courier/internal/delivery/metrics"
	"courier/internal/domain/lifecycle"
	"courier/internal/errors"
	"courier/internal/util"
)

// Service ticks every job on its own interval; runs of one job never overlap.
type Service struct {
	logger   *slog.Logger
	registry *Registry
	locks    LockFactory
	metrics  *metrics.JobMetrics

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// ServiceOptions configure the scheduler service.
type ServiceOptions struct {
	Logger   *slog.Logger
	Registry *Registry
	Locks    LockFactory
	Metrics  *metrics.JobMetrics
}

// NewService validates opts and builds the service.
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger required")
	}
	if opts.Registry == nil || len(opts.Registry.Jobs()) == 0 {
		return nil, errors.New("at least one job required")
	}
	for _, job := range opts.Registry.Jobs() {
		if job.Interval() <= 0 {
			return nil, errors.Errorf("job %s needs a positive interval", job.Name())
		}
	}

	locks := opts.Locks
	if locks == nil {
		locks = LocalLocks()
	}

	return &Service{
		logger:   opts.Logger.With(slog.String("component", "scheduler")),
		registry: opts.Registry,
		locks:    locks,
		metrics:  opts.Metrics,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Serve runs every job once immediately and then on its interval until ctx is done or Stop is called.
func (s *Service) Serve(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("scheduler already started")
	}
	defer close(s.done)

	jobs := s.registry.Jobs()
	runners := make([]*runner, 0, len(jobs))
	for _, job := range jobs {
		lock, err := s.locks(job.Name())
		if err != nil {
			return errors.Wrapf(err, "lock for %s", job.Name())
		}
		runners = append(runners, &runner{job: job, lock: lock, svc: s})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.logger.Info("Scheduler started", slog.Int("jobs", len(runners)))

	var wg sync.WaitGroup
	for _, r := range runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.loop(ctx)
		}()
	}

	select {
	case <-ctx.Done():
	case <-s.stop:
		cancel()
	}
	wg.Wait()
	s.logger.Info("Scheduler stopped")

	return nil
}

// Stop cancels the loops and waits up to the drain timeout for running jobs.
func (s *Service) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	if !s.started.Load() {
		return nil
	}

	timer := time.NewTimer(lifecycle.DrainTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return nil
	case <-timer.C:
		return errors.New("scheduler jobs did not finish before drain timeout")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

type runner struct {
	job  Job
	lock Lock
	svc  *Service
}

func (r *runner) loop(ctx context.Context) {
	r.runOnce(ctx)

	ticker := time.NewTicker(r.job.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *runner) runOnce(ctx context.Context) {
	name := r.job.Name()
	logger := r.svc.logger.With(slog.String("job", name))

	locked, err := r.lock.Acquire(ctx)
	if err != nil {
		logger.Error("Failed to acquire job lock", slog.Any("error", err))
		r.svc.metrics.IncResult(name, metrics.ResultFailure)

		return
	}
	if !locked {
		logger.Debug("Job held by another instance, skipping")
		r.svc.metrics.IncResult(name, metrics.ResultSkipped)

		return
	}
	defer func() {
		// Release on a fresh context so shutdown still frees the lease.
		releaseCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if relErr := r.lock.Release(releaseCtx); relErr != nil {
			logger.Warn("Failed to release job lock", slog.Any("error", relErr))
		}
	}()

	start := time.Now()
	err = r.job.Run(ctx)
	duration := time.Since(start)
	r.svc.metrics.ObserveDuration(name, duration)

	if err != nil {
		logger.Error("Job failed", slog.String("took", util.FormatDuration(duration)), slog.Any("error", err))
		r.svc.metrics.IncResult(name, metrics.ResultFailure)

		return
	}

	logger.Debug("Job completed", slog.String("took", util.FormatDuration(duration)))
	r.svc.metrics.IncResult(name, metrics.ResultSuccess)
}
