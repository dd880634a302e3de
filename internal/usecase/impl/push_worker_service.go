package impl

import (
	"context"
	"log/slog"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"
	"courier/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultWorkerBatchSize  = 500
	defaultMaxAttempts      = 5
	defaultRetryBackoff     = 5 * time.Minute
	defaultGatewayBatchSize = 100
	defaultStaleAfter       = 15 * time.Minute

	pushSound = "default"
)

type pushWorkerService struct {
	queue   repository.JobQueue
	tokens  repository.PushTokenRepository
	gateway service.PushGateway
	ledger  service.DeliveryLedger
	logger  *slog.Logger
	now     func() time.Time

	batchSize        int
	maxAttempts      int
	retryBackoff     time.Duration
	gatewayBatchSize int
	staleAfter       time.Duration
}

// PushWorkerServiceParams holds dependencies for PushWorkerService, injected by Fx.
type PushWorkerServiceParams struct {
	fx.In

	Queue   repository.JobQueue
	Tokens  repository.PushTokenRepository
	Gateway service.PushGateway
	Ledger  service.DeliveryLedger `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPushWorkerService creates a new push worker service instance
func NewPushWorkerService(params PushWorkerServiceParams) usecase.PushWorkerUsecase {
	svc := &pushWorkerService{
		queue:            params.Queue,
		tokens:           params.Tokens,
		gateway:          params.Gateway,
		ledger:           params.Ledger,
		logger:           params.Logger,
		now:              time.Now,
		batchSize:        defaultWorkerBatchSize,
		maxAttempts:      defaultMaxAttempts,
		retryBackoff:     defaultRetryBackoff,
		gatewayBatchSize: defaultGatewayBatchSize,
		staleAfter:       defaultStaleAfter,
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if params.Config != nil && params.Config.Worker != nil {
		w := params.Config.Worker
		if w.BatchSize > 0 {
			svc.batchSize = w.BatchSize
		}
		if w.MaxAttempts > 0 {
			svc.maxAttempts = w.MaxAttempts
		}
		if w.RetryBackoff > 0 {
			svc.retryBackoff = w.RetryBackoff
		}
		// The gateway rejects requests above 100 messages.
		if w.GatewayBatchSize > 0 && w.GatewayBatchSize <= defaultGatewayBatchSize {
			svc.gatewayBatchSize = w.GatewayBatchSize
		}
		if w.StaleAfter > 0 {
			svc.staleAfter = w.StaleAfter
		}
	}

	return svc
}

// jobOutcome is what one job's delivery attempt produced.
type jobOutcome struct {
	messages      int
	skipped       int
	invalidTokens []string
	err           error
}

// Drain claims one batch of due jobs and writes back an outcome for each
func (s *pushWorkerService) Drain(ctx context.Context, batchSize int) (*usecase.DrainResult, error) {
	if batchSize <= 0 {
		batchSize = s.batchSize
	}

	jobs, err := s.queue.Dequeue(ctx, batchSize)
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "failed to dequeue push jobs"))
	}

	result := &usecase.DrainResult{Claimed: len(jobs)}
	if len(jobs) == 0 {
		return result, nil
	}

	targets, resolveErr := s.resolveTargets(ctx, jobs)
	if resolveErr != nil {
		s.logger.Error("Failed to resolve push tokens", slog.Any("error", resolveErr), slog.Int("jobs", len(jobs)))
	}

	var (
		sentIDs       []uuid.UUID
		invalidTokens []string
	)

	for _, job := range jobs {
		var outcome jobOutcome
		if resolveErr != nil {
			outcome.err = resolveErr
		} else {
			outcome = s.deliverJob(ctx, job, targets[job.UserID])
		}

		result.Messages += outcome.messages
		result.Skipped += outcome.skipped
		invalidTokens = append(invalidTokens, outcome.invalidTokens...)

		if outcome.err == nil {
			sentIDs = append(sentIDs, job.ID)

			continue
		}

		s.logger.Warn("Push job delivery failed",
			slog.String("job_id", job.ID.String()),
			slog.Int("attempts", job.Attempts),
			slog.Any("error", outcome.err),
		)

		if s.recordFailure(ctx, job, outcome.err) == entity.PushJobFailed {
			result.Failed++
		} else {
			result.Retried++
		}
	}

	if len(sentIDs) > 0 {
		if err := s.queue.MarkSent(ctx, sentIDs); err != nil {
			// Rows stay processing and come back through ReclaimStale.
			s.logger.Error("Failed to mark push jobs sent", slog.Any("error", err), slog.Int("jobs", len(sentIDs)))
		}
	}
	result.Sent = len(sentIDs)

	s.deactivateTokens(ctx, invalidTokens)

	return result, nil
}

// ReclaimStale returns jobs stuck in processing for longer than the stale window
func (s *pushWorkerService) ReclaimStale(ctx context.Context) (int64, error) {
	reclaimed, err := s.queue.ReclaimStale(ctx, s.now().Add(-s.staleAfter), s.maxAttempts)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reclaim stale push jobs")
	}

	if reclaimed > 0 {
		s.logger.Warn("Reclaimed stale push jobs", slog.Int64("count", reclaimed))
	}

	return reclaimed, nil
}

// resolveTargets maps each user in jobs to its delivery tokens.
func (s *pushWorkerService) resolveTargets(ctx context.Context, jobs []*entity.PushJob) (map[uuid.UUID][]string, error) {
	userIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		userIDs = append(userIDs, job.UserID)
	}

	return resolvePushTargets(ctx, s.tokens, s.logger, userIDs)
}

// deliverJob sends one message per token in gateway-sized chunks.
// Every chunk is attempted; the job succeeds only if all of them were accepted.
func (s *pushWorkerService) deliverJob(ctx context.Context, job *entity.PushJob, tokens []string) jobOutcome {
	var outcome jobOutcome

	// Nothing to deliver: the notification row stays the source of truth.
	if len(tokens) == 0 {
		return outcome
	}

	messages := buildJobMessages(job, tokens)
	messages, outcome.skipped = s.skipDelivered(ctx, messages)

	for _, chunk := range util.Chunk(messages, s.gatewayBatchSize) {
		outcome.messages += len(chunk)

		res, err := s.gateway.Send(ctx, chunk)
		if res != nil {
			outcome.invalidTokens = append(outcome.invalidTokens, res.InvalidTokens...)
		}
		if err != nil {
			outcome.err = errors.Wrapf(err, "push gateway rejected %d messages", len(chunk))
			// A routed batch can fail on one provider after another accepted its share.
			if res != nil {
				s.markDelivered(ctx, res.AcceptedKeys)
			}

			continue
		}

		s.markDelivered(ctx, idempotencyKeys(chunk))
	}

	return outcome
}

func buildJobMessages(job *entity.PushJob, tokens []string) []*entity.PushMessage {
	data := make(map[string]any, len(job.Payload.Data)+1)
	for k, v := range job.Payload.Data {
		data[k] = v
	}
	if job.NotificationID != nil {
		data["notification_id"] = job.NotificationID.String()
	}

	messages := make([]*entity.PushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, &entity.PushMessage{
			To:             token,
			Title:          job.Payload.Title,
			Body:           job.Payload.Body,
			Sound:          pushSound,
			Data:           data,
			IdempotencyKey: job.ID.String() + ":" + token,
		})
	}

	return messages
}

// skipDelivered drops messages the ledger saw accepted on an earlier attempt.
func (s *pushWorkerService) skipDelivered(ctx context.Context, messages []*entity.PushMessage) ([]*entity.PushMessage, int) {
	if s.ledger == nil {
		return messages, 0
	}

	delivered, err := s.ledger.FilterDelivered(ctx, idempotencyKeys(messages))
	if err != nil {
		s.logger.Warn("Delivery ledger lookup failed, sending all messages", slog.Any("error", err))

		return messages, 0
	}

	pending := messages[:0:0]
	for _, msg := range messages {
		if delivered[msg.IdempotencyKey] {
			continue
		}
		pending = append(pending, msg)
	}

	return pending, len(messages) - len(pending)
}

func idempotencyKeys(messages []*entity.PushMessage) []string {
	keys := make([]string, 0, len(messages))
	for _, msg := range messages {
		keys = append(keys, msg.IdempotencyKey)
	}

	return keys
}

func (s *pushWorkerService) markDelivered(ctx context.Context, keys []string) {
	if s.ledger == nil || len(keys) == 0 {
		return
	}

	if err := s.ledger.MarkDelivered(ctx, keys); err != nil {
		s.logger.Warn("Failed to record delivered messages", slog.Any("error", err))
	}
}

// recordFailure writes back retry or failed and returns the status it chose.
func (s *pushWorkerService) recordFailure(ctx context.Context, job *entity.PushJob, cause error) entity.PushJobStatus {
	decision := job.DecideRetry(s.now(), s.maxAttempts, s.retryBackoff)
	reason := cause.Error()

	var err error
	if decision.Status == entity.PushJobFailed {
		err = s.queue.MarkFailed(ctx, []uuid.UUID{job.ID}, reason)
	} else {
		err = s.queue.MarkRetry(ctx, []uuid.UUID{job.ID}, decision.NextAttemptAt, reason)
	}

	if err != nil {
		s.logger.Error("Failed to write back push job outcome",
			slog.String("job_id", job.ID.String()),
			slog.String("status", decision.Status.String()),
			slog.Any("error", err),
		)
	}

	return decision.Status
}

func (s *pushWorkerService) deactivateTokens(ctx context.Context, tokens []string) {
	tokens = util.Unique(tokens)
	if len(tokens) == 0 {
		return
	}

	if err := s.tokens.DeactivateTokens(ctx, tokens); err != nil {
		s.logger.Warn("Failed to deactivate invalid push tokens", slog.Any("error", err), slog.Int("count", len(tokens)))

		return
	}

	s.logger.Info("Deactivated invalid push tokens", slog.Int("count", len(tokens)))
}
