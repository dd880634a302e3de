package service

import (
	"context"
	"encoding/json"

	"courier/internal/domain/entity"
)

// ChangeFilter selects row changes on one table.
type ChangeFilter struct {
	Schema string
	Table  string
	Event  entity.ChangeEventType
	// Filter uses the column=op.value syntax, e.g. driver_id=eq.<uuid> or merchant_id=in.(a,b).
	Filter string
}

// ChangeEvent is one row change delivered by the stream.
type ChangeEvent struct {
	Type      entity.ChangeEventType
	Table     string
	Record    json.RawMessage
	OldRecord json.RawMessage
}

// Subscription is an open change-stream channel.
type Subscription interface {
	// Topic identifies the channel.
	Topic() string

	// Unsubscribe leaves the channel. It is safe to call more than once.
	Unsubscribe(ctx context.Context) error
}

// ChangeStream opens filtered change-data-capture channels.
type ChangeStream interface {
	// Subscribe joins a channel for filter; handler runs for every matching event until unsubscribed.
	Subscribe(ctx context.Context, filter ChangeFilter, handler func(ChangeEvent)) (Subscription, error)
}

// SoundPlayer plays the new-order alert.
type SoundPlayer interface {
	Play(ctx context.Context) error
}
