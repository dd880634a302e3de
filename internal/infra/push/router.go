package push

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"go.uber.org/multierr"
)

// routingGateway splits a batch by token format: Expo tokens to the relay, everything else to FCM.
type routingGateway struct {
	expo     service.PushGateway
	firebase service.PushGateway
}

// NewRoutingGateway creates the "auto" gateway. firebase may be nil; raw tokens then fail the batch.
func NewRoutingGateway(expo, firebase service.PushGateway) service.PushGateway {
	return &routingGateway{expo: expo, firebase: firebase}
}

// Send fails when any route fails so the job is retried.
// The result still carries the keys and invalid tokens of routes that succeeded.
func (g *routingGateway) Send(ctx context.Context, messages []*entity.PushMessage) (*service.PushResult, error) {
	var expoMsgs, fcmMsgs []*entity.PushMessage
	for _, msg := range messages {
		if entity.IsExpoPushToken(msg.To) {
			expoMsgs = append(expoMsgs, msg)
		} else {
			fcmMsgs = append(fcmMsgs, msg)
		}
	}

	result := &service.PushResult{}
	var err error

	if len(expoMsgs) > 0 {
		err = multierr.Append(err, g.route(ctx, g.expo, "expo", expoMsgs, result))
	}
	if len(fcmMsgs) > 0 {
		err = multierr.Append(err, g.route(ctx, g.firebase, "firebase", fcmMsgs, result))
	}

	return result, err
}

func (g *routingGateway) route(ctx context.Context, gateway service.PushGateway, name string, messages []*entity.PushMessage, into *service.PushResult) error {
	if gateway == nil {
		return errors.Errorf("%s gateway not configured for %d messages", name, len(messages))
	}

	res, err := gateway.Send(ctx, messages)
	if err != nil {
		return errors.Wrapf(err, "%s gateway", name)
	}

	into.Accepted += res.Accepted
	into.InvalidTokens = append(into.InvalidTokens, res.InvalidTokens...)
	for _, msg := range messages {
		into.AcceptedKeys = append(into.AcceptedKeys, msg.IdempotencyKey)
	}

	return nil
}
