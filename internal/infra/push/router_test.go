package push

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"
	"courier/internal/errors"
	mockSvc "courier/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tokensOf(msgs []*entity.PushMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.To)
	}

	return out
}

func TestRoutingGateway_SplitsByTokenFormat(t *testing.T) {
	expo := mockSvc.NewMockPushGateway(t)
	fcm := mockSvc.NewMockPushGateway(t)

	expo.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msgs []*entity.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"ExponentPushToken[a]", "ExpoPushToken[b]"}, tokensOf(msgs))
		})).
		Return(&service.PushResult{Accepted: 1, InvalidTokens: []string{"ExpoPushToken[b]"}}, nil)
	fcm.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(msgs []*entity.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"raw-fcm"}, tokensOf(msgs))
		})).
		Return(&service.PushResult{Accepted: 1}, nil)

	result, err := NewRoutingGateway(expo, fcm).Send(context.Background(), []*entity.PushMessage{
		{To: "ExponentPushToken[a]"},
		{To: "raw-fcm"},
		{To: "ExpoPushToken[b]"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, []string{"ExpoPushToken[b]"}, result.InvalidTokens)
}

func TestRoutingGateway_OnlyCallsNeededRoutes(t *testing.T) {
	expo := mockSvc.NewMockPushGateway(t)
	expo.EXPECT().Send(mock.Anything, mock.Anything).Return(&service.PushResult{Accepted: 1}, nil)

	result, err := NewRoutingGateway(expo, nil).Send(context.Background(), []*entity.PushMessage{{To: "ExponentPushToken[a]"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
}

func TestRoutingGateway_MissingFirebaseFails(t *testing.T) {
	expo := mockSvc.NewMockPushGateway(t)

	_, err := NewRoutingGateway(expo, nil).Send(context.Background(), []*entity.PushMessage{{To: "raw-fcm"}})
	assert.ErrorContains(t, err, "firebase gateway not configured")
}

func TestRoutingGateway_CombinesErrors(t *testing.T) {
	expo := mockSvc.NewMockPushGateway(t)
	fcm := mockSvc.NewMockPushGateway(t)
	expo.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("relay down"))
	fcm.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("fcm down"))

	_, err := NewRoutingGateway(expo, fcm).Send(context.Background(), []*entity.PushMessage{
		{To: "ExponentPushToken[a]"},
		{To: "raw-fcm"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay down")
	assert.Contains(t, err.Error(), "fcm down")
}

func TestRoutingGateway_PartialFailureReportsAcceptedRoute(t *testing.T) {
	expo := mockSvc.NewMockPushGateway(t)
	fcm := mockSvc.NewMockPushGateway(t)
	expo.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(&service.PushResult{Accepted: 1, InvalidTokens: []string{"ExpoPushToken[b]"}}, nil)
	fcm.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("fcm down"))

	result, err := NewRoutingGateway(expo, fcm).Send(context.Background(), []*entity.PushMessage{
		{To: "ExponentPushToken[a]", IdempotencyKey: "job:ExponentPushToken[a]"},
		{To: "raw-fcm", IdempotencyKey: "job:raw-fcm"},
		{To: "ExpoPushToken[b]", IdempotencyKey: "job:ExpoPushToken[b]"},
	})
	require.ErrorContains(t, err, "fcm down")
	require.NotNil(t, result)
	assert.Equal(t, []string{"job:ExponentPushToken[a]", "job:ExpoPushToken[b]"}, result.AcceptedKeys)
	assert.Equal(t, []string{"ExpoPushToken[b]"}, result.InvalidTokens)
	assert.Equal(t, 1, result.Accepted)
}
