package usecase

import (
	"context"
)

// DrainResult aggregates one push worker pass.
type DrainResult struct {
	Claimed  int `json:"claimed"`
	Sent     int `json:"sent"`
	Retried  int `json:"retried"`
	Failed   int `json:"failed"`
	Messages int `json:"messages"`
	// Skipped counts messages already delivered on an earlier attempt.
	Skipped int `json:"skipped"`
}

// PushWorkerUsecase drains the push job queue
type PushWorkerUsecase interface {
	// Drain claims up to batchSize due jobs and delivers them. batchSize <= 0 uses the configured default.
	// Per-job failures are written back and counted, never returned.
	Drain(ctx context.Context, batchSize int) (*DrainResult, error)

	// ReclaimStale returns jobs stuck in processing back to the queue.
	ReclaimStale(ctx context.Context) (int64, error)
}
