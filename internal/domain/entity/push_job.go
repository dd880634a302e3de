// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushJobStatus is the lifecycle state of a queued push job.
type PushJobStatus string

const (
	// PushJobPending is waiting for its first delivery attempt.
	PushJobPending PushJobStatus = "pending"
	// PushJobProcessing is claimed by a worker invocation.
	PushJobProcessing PushJobStatus = "processing"
	// PushJobSent is terminal: every message was accepted by the gateway, or there was nothing to send.
	PushJobSent PushJobStatus = "sent"
	// PushJobRetry is waiting for scheduled_at before it can be claimed again.
	PushJobRetry PushJobStatus = "retry"
	// PushJobFailed is terminal: attempts reached the configured maximum.
	PushJobFailed PushJobStatus = "failed"
)

// String returns the string representation of the status.
func (s PushJobStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition may happen.
func (s PushJobStatus) IsTerminal() bool {
	return s == PushJobSent || s == PushJobFailed
}

// IsClaimable reports whether a dequeue may pick the job up (subject to scheduled_at).
func (s PushJobStatus) IsClaimable() bool {
	return s == PushJobPending || s == PushJobRetry
}

// PushPayload is the user-facing content of a push job.
type PushPayload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// PushJob is one queued unit of push work tied to a single user and payload.
type PushJob struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	NotificationID *uuid.UUID    `json:"notification_id,omitempty"`
	Payload        PushPayload   `json:"payload"`
	Status         PushJobStatus `json:"status"`
	// Attempts counts claims, including the one in progress once dequeued.
	Attempts    int        `json:"attempts"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RetryDecision is the write-back chosen for a job whose delivery failed.
type RetryDecision struct {
	Status        PushJobStatus
	NextAttemptAt time.Time
}

// DecideRetry returns failed once attempts reach maxAttempts, otherwise retry at now+backoff.
// The backoff is fixed; attempts only drives the cutoff.
func (j *PushJob) DecideRetry(now time.Time, maxAttempts int, backoff time.Duration) RetryDecision {
	if j.Attempts >= maxAttempts {
		return RetryDecision{Status: PushJobFailed}
	}

	return RetryDecision{Status: PushJobRetry, NextAttemptAt: now.Add(backoff)}
}
