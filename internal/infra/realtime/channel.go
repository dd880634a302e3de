package realtime

import (
	"context"
	"sync"

	"courier/internal/domain/service"
)

// channel is one joined topic.
type channel struct {
	client  *Client
	topic   string
	filter  service.ChangeFilter
	handler func(service.ChangeEvent)
	once    sync.Once
}

func (ch *channel) Topic() string {
	return ch.topic
}

// Unsubscribe stops dispatch immediately and sends phx_leave if the socket is up.
func (ch *channel) Unsubscribe(_ context.Context) error {
	var err error
	ch.once.Do(func() {
		ch.client.forget(ch.topic)
		err = ch.client.send(ch.topic, eventLeave)
	})

	return err
}
