package service

import (
	"context"
)

// QueueKickEvent asks a worker to drain the push queue now instead of waiting for the next tick.
type QueueKickEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Reason    string `json:"reason"`
	UserID    string `json:"user_id,omitempty"`
	BatchSize int    `json:"batch_size,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQueueKick publishes a queue kick for async processing
	PublishQueueKick(ctx context.Context, event *QueueKickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
