package usecase

import (
	"context"

	"github.com/google/uuid"
)

// NotifyUserInput is one notification addressed to one user
type NotifyUserInput struct {
	UserID uuid.UUID      `json:"user_id"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data,omitempty"`

	// RequestID is carried into the queue kick for tracing
	RequestID string `json:"-"`
}

// NotifyUserResult reports the enqueue outcome
type NotifyUserResult struct {
	OK             bool      `json:"ok"`
	Enqueued       bool      `json:"enqueued"`
	NotificationID uuid.UUID `json:"notification_id"`
	JobID          uuid.UUID `json:"job_id"`
}

// NotifierCredentials are what a notify caller presented
type NotifierCredentials struct {
	Secret      string
	BearerToken string
}

// NotificationUsecase defines the notify-user use cases
type NotificationUsecase interface {
	// Authorize accepts the shared notify secret, the service key, or a bearer token of an admin user.
	Authorize(ctx context.Context, creds NotifierCredentials) error

	// NotifyUser stores the notification and enqueues its push job in one transaction.
	// Delivery is left to the push worker.
	NotifyUser(ctx context.Context, input *NotifyUserInput) (*NotifyUserResult, error)
}
