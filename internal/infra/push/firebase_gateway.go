package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxFirebaseBatch is the FCM SendEach limit.
const MaxFirebaseBatch = 500

// fcmSender is the slice of messaging.Client the gateway uses.
type fcmSender interface {
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseGateway struct {
	client fcmSender
	logger *slog.Logger
}

// NewFirebaseGateway initializes the Firebase app from a credentials file, or from ADC when the path is empty
func NewFirebaseGateway(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.PushGateway, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseGateway{client: client, logger: logger}, nil
}

// Send delivers each message individually in one SendEach call.
func (g *firebaseGateway) Send(ctx context.Context, messages []*entity.PushMessage) (*service.PushResult, error) {
	if len(messages) == 0 {
		return &service.PushResult{}, nil
	}
	if len(messages) > MaxFirebaseBatch {
		return nil, errors.Errorf("firebase batch of %d exceeds limit %d", len(messages), MaxFirebaseBatch)
	}

	fcmMessages := make([]*messaging.Message, 0, len(messages))
	for _, msg := range messages {
		fcmMessages = append(fcmMessages, toFCMMessage(msg))
	}

	response, err := g.client.SendEach(ctx, fcmMessages)
	if err != nil {
		return nil, errors.Retryable(errors.Wrap(err, "failed to send firebase batch"))
	}

	result := &service.PushResult{Accepted: response.SuccessCount}
	for i, sendResponse := range response.Responses {
		if sendResponse.Error == nil || i >= len(messages) {
			continue
		}

		if messaging.IsUnregistered(sendResponse.Error) || messaging.IsInvalidArgument(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, messages[i].To)
		} else if g.logger != nil {
			g.logger.Warn("Firebase rejected message", slog.Int("index", i), slog.Any("error", sendResponse.Error))
		}
	}

	return result, nil
}

func toFCMMessage(msg *entity.PushMessage) *messaging.Message {
	fcm := &messaging.Message{
		Token: msg.To,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: stringifyData(msg.Data),
	}

	if msg.Sound != "" {
		fcm.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Sound: msg.Sound},
		}
		fcm.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: msg.Sound}},
		}
	}

	return fcm
}

// stringifyData flattens values because FCM data payloads only carry strings.
func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}

	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			out[key] = v
		case fmt.Stringer:
			out[key] = v.String()
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				out[key] = fmt.Sprint(v)

				continue
			}
			out[key] = string(raw)
		}
	}

	return out
}
