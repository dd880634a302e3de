package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"courier/internal/domain/service"
	"courier/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher publishes queue kicks to a Google Cloud Pub/Sub topic.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher connects to projectID and verifies topicID exists
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishQueueKick publishes the kick and waits for the server ack
func (p *googlePublisher) PublishQueueKick(ctx context.Context, event *service.QueueKickEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: kickAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish queue kick")
	}

	p.logger.Debug("[GooglePubSub] Queue kick published",
		slog.String("reason", event.Reason),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes and releases the client
func (p *googlePublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func kickAttributes(event *service.QueueKickEvent) map[string]string {
	attributes := map[string]string{"reason": event.Reason}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
