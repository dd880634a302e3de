package postgres

import (
	"context"
	"sort"
	"time"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dequeueSQL claims due jobs in one statement. SKIP LOCKED keeps concurrent workers
// from blocking on, or double-claiming, rows another worker is taking.
const dequeueSQL = `
WITH due AS (
	SELECT id FROM push_jobs
	WHERE status IN (?, ?) AND scheduled_at <= ?
	ORDER BY scheduled_at, created_at
	LIMIT ?
	FOR UPDATE SKIP LOCKED
)
UPDATE push_jobs AS j
SET status = ?, attempts = j.attempts + 1, updated_at = ?
FROM due
WHERE j.id = due.id
RETURNING j.*`

type jobQueue struct {
	db  *gorm.DB
	now func() time.Time
}

// NewJobQueue is the constructor for the push_jobs backed queue.
func NewJobQueue(db *gorm.DB) repository.JobQueue {
	return &jobQueue{db: db, now: time.Now}
}

// Enqueue inserts a pending job; ScheduledAt defaults to now.
func (q *jobQueue) Enqueue(ctx context.Context, job *entity.PushJob) error {
	now := q.now()
	if job.ScheduledAt.IsZero() {
		job.ScheduledAt = now
	}
	if job.Status == "" {
		job.Status = entity.PushJobPending
	}

	jobM := fromPushJobDomain(job)

	if err := q.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("push job references an unknown user or notification")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid push job status")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue push job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// Dequeue claims up to batchSize due jobs, oldest schedule first.
func (q *jobQueue) Dequeue(ctx context.Context, batchSize int) ([]*entity.PushJob, error) {
	if batchSize <= 0 {
		return nil, nil
	}

	now := q.now()
	var jobModels []*model.PushJobModel

	if err := q.db.WithContext(ctx).Raw(dequeueSQL,
		entity.PushJobPending, entity.PushJobRetry, now,
		batchSize,
		entity.PushJobProcessing, now,
	).Scan(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to claim push jobs")
	}

	// RETURNING order is unspecified.
	sort.SliceStable(jobModels, func(i, j int) bool {
		return jobModels[i].ScheduledAt.Before(jobModels[j].ScheduledAt)
	})

	jobs := make([]*entity.PushJob, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toPushJobDomain(jobM))
	}

	return jobs, nil
}

// MarkSent finalizes claimed jobs as sent.
func (q *jobQueue) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	now := q.now()

	return q.transition(ctx, ids, map[string]any{
		"status":       entity.PushJobSent,
		"processed_at": now,
		"last_error":   "",
		"updated_at":   now,
	}, "failed to mark push jobs sent")
}

// MarkRetry schedules claimed jobs for another attempt.
func (q *jobQueue) MarkRetry(ctx context.Context, ids []uuid.UUID, nextAttemptAt time.Time, reason string) error {
	return q.transition(ctx, ids, map[string]any{
		"status":       entity.PushJobRetry,
		"scheduled_at": nextAttemptAt,
		"last_error":   reason,
		"updated_at":   q.now(),
	}, "failed to mark push jobs for retry")
}

// MarkFailed finalizes claimed jobs as failed.
func (q *jobQueue) MarkFailed(ctx context.Context, ids []uuid.UUID, reason string) error {
	now := q.now()

	return q.transition(ctx, ids, map[string]any{
		"status":       entity.PushJobFailed,
		"processed_at": now,
		"last_error":   reason,
		"updated_at":   now,
	}, "failed to mark push jobs failed")
}

// ReclaimStale returns jobs stuck in processing to retry, immediately eligible.
// A stuck claim that was already the last allowed attempt is failed.
func (q *jobQueue) ReclaimStale(ctx context.Context, olderThan time.Time, maxAttempts int) (int64, error) {
	now := q.now()
	var reclaimed int64

	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		failed := tx.Model(&model.PushJobModel{}).
			Where("status = ? AND updated_at < ? AND attempts >= ?", entity.PushJobProcessing, olderThan, maxAttempts).
			Updates(map[string]any{
				"status":       entity.PushJobFailed,
				"processed_at": now,
				"last_error":   "worker timed out on final attempt",
				"updated_at":   now,
			})
		if failed.Error != nil {
			return failed.Error
		}

		retried := tx.Model(&model.PushJobModel{}).
			Where("status = ? AND updated_at < ?", entity.PushJobProcessing, olderThan).
			Updates(map[string]any{
				"status":       entity.PushJobRetry,
				"scheduled_at": now,
				"last_error":   "reclaimed after worker timeout",
				"updated_at":   now,
			})
		if retried.Error != nil {
			return retried.Error
		}

		reclaimed = failed.RowsAffected + retried.RowsAffected

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to reclaim stale push jobs")
	}

	return reclaimed, nil
}

// transition only touches rows still in processing, so a late write-back never rewrites a terminal job.
func (q *jobQueue) transition(ctx context.Context, ids []uuid.UUID, updates map[string]any, msg string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := q.db.WithContext(ctx).
		Model(&model.PushJobModel{}).
		Where("id IN ? AND status = ?", ids, entity.PushJobProcessing).
		Updates(updates).Error; err != nil {
		return errors.Wrap(err, msg)
	}

	return nil
}

// --- Mapper Functions ---

func toPushJobDomain(data *model.PushJobModel) *entity.PushJob {
	return &entity.PushJob{
		ID:             data.ID,
		UserID:         data.UserID,
		NotificationID: data.NotificationID,
		Payload: entity.PushPayload{
			Title: data.Title,
			Body:  data.Body,
			Data:  map[string]any(data.Data),
		},
		Status:      entity.PushJobStatus(data.Status),
		Attempts:    data.Attempts,
		ScheduledAt: data.ScheduledAt,
		ProcessedAt: data.ProcessedAt,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPushJobDomain(data *entity.PushJob) *model.PushJobModel {
	return &model.PushJobModel{
		ID:             data.ID,
		UserID:         data.UserID,
		NotificationID: data.NotificationID,
		Title:          data.Payload.Title,
		Body:           data.Payload.Body,
		Data:           model.JSONMap(data.Payload.Data),
		Status:         data.Status.String(),
		Attempts:       data.Attempts,
		ScheduledAt:    data.ScheduledAt,
		ProcessedAt:    data.ProcessedAt,
		LastError:      data.LastError,
	}
}
