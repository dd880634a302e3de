package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"courier/config"
	"courier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_DeliversEnvelope(t *testing.T) {
	var envelope PushEnvelope
	var requestHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishQueueKick(context.Background(), &service.QueueKickEvent{
		RequestID: "req-1",
		Reason:    "notify_user",
		BatchSize: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestHeader)
	assert.Equal(t, "req-1", envelope.Attribute(AttrRequestID))
	assert.Equal(t, "notify_user", envelope.Attribute("reason"))
	assert.NotEmpty(t, envelope.Message.MessageID)

	var event service.QueueKickEvent
	require.NoError(t, envelope.Decode(&event))
	assert.Equal(t, 25, event.BatchSize)
	assert.Equal(t, "notify_user", event.Reason)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, slog.Default()).
		PublishQueueKick(context.Background(), &service.QueueKickEvent{Reason: "test"})
	assert.ErrorContains(t, err, "503")
}

func TestPushEnvelope_Decode(t *testing.T) {
	var envelope PushEnvelope
	var event service.QueueKickEvent

	require.NoError(t, envelope.Decode(&event))
	assert.Empty(t, event.Reason)

	envelope.Message.Data = "!!not-base64"
	assert.Error(t, envelope.Decode(&event))

	envelope.Message.Data = "bm90IGpzb24=" // "not json"
	assert.Error(t, envelope.Decode(&event))
}

func TestNewPublisher_Selection(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishQueueKick(ctx, &service.QueueKickEvent{Reason: "x"}))

	publisher, err = newPublisher(ctx, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://worker/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "local"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "google", ProjectID: "p"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.ErrorContains(t, err, "unknown pubsub provider")
}
