// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/errors"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when a push job is not found.
var ErrJobNotFound = errors.New("push job not found")

// JobQueue is the push job table seen as a claimable queue.
// Mark* only touch jobs that are still claimed, so terminal jobs are never rewritten.
type JobQueue interface {
	// Enqueue persists a new pending job scheduled for immediate delivery.
	Enqueue(ctx context.Context, job *entity.PushJob) error

	// Dequeue atomically claims up to batchSize due jobs, marks them processing and increments attempts.
	// Concurrent callers never receive the same job.
	Dequeue(ctx context.Context, batchSize int) ([]*entity.PushJob, error)

	// MarkSent moves claimed jobs to sent and stamps processed_at.
	MarkSent(ctx context.Context, ids []uuid.UUID) error

	// MarkRetry moves claimed jobs to retry, eligible again at nextAttemptAt.
	MarkRetry(ctx context.Context, ids []uuid.UUID, nextAttemptAt time.Time, reason string) error

	// MarkFailed moves claimed jobs to the terminal failed state.
	MarkFailed(ctx context.Context, ids []uuid.UUID, reason string) error

	// ReclaimStale returns jobs claimed before olderThan to retry, for workers that died mid-batch.
	// Jobs that already used maxAttempts claims are failed instead.
	ReclaimStale(ctx context.Context, olderThan time.Time, maxAttempts int) (int64, error)
}
