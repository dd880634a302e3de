package impl

import (
	"context"
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	notifRepo *mockRepo.MockNotificationRepository
	queue     *mockRepo.MockJobQueue
	users     *mockRepo.MockUserRepository
	tokens    *mockSvc.MockTokenService
	publisher *mockSvc.MockEventPublisher
}

func newTestNotificationService(t *testing.T, notify *config.NotifyConfig) (usecase.NotificationUsecase, *notificationMocks) {
	t.Helper()

	m := &notificationMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		notifRepo: mockRepo.NewMockNotificationRepository(t),
		queue:     mockRepo.NewMockJobQueue(t),
		users:     mockRepo.NewMockUserRepository(t),
		tokens:    mockSvc.NewMockTokenService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewNotificationService(NotificationServiceParams{
		TxManager: m.txManager,
		Users:     m.users,
		Tokens:    m.tokens,
		Publisher: m.publisher,
		Config:    &config.Config{Notify: notify},
	})

	return svc, m
}

// runTransaction makes the mocked manager invoke fn with the mocked factory.
func (m *notificationMocks) runTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestNotificationService_Authorize_Secret(t *testing.T) {
	svc, _ := newTestNotificationService(t, &config.NotifyConfig{Secret: "s3cret"})

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{Secret: "s3cret"})
	assert.NoError(t, err)
}

func TestNotificationService_Authorize_WrongSecret(t *testing.T) {
	svc, _ := newTestNotificationService(t, &config.NotifyConfig{Secret: "s3cret"})

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{Secret: "guess"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Authorize_EmptyConfiguredSecretNeverMatches(t *testing.T) {
	svc, _ := newTestNotificationService(t, &config.NotifyConfig{})

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{Secret: ""})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Authorize_ServiceKey(t *testing.T) {
	svc, m := newTestNotificationService(t, nil)

	m.tokens.EXPECT().IsServiceKey("service-key").Return(true)

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{BearerToken: "service-key"})
	assert.NoError(t, err)
}

func TestNotificationService_Authorize_AdminBearer(t *testing.T) {
	svc, m := newTestNotificationService(t, nil)
	ctx := context.Background()
	adminID := uuid.New()

	m.tokens.EXPECT().IsServiceKey("jwt").Return(false)
	m.tokens.EXPECT().ParseSubject("jwt").Return(adminID, nil)
	m.users.EXPECT().IsAdmin(ctx, adminID).Return(true, nil)

	err := svc.Authorize(ctx, usecase.NotifierCredentials{BearerToken: "jwt"})
	assert.NoError(t, err)
}

func TestNotificationService_Authorize_NonAdminBearer(t *testing.T) {
	svc, m := newTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	m.tokens.EXPECT().IsServiceKey("jwt").Return(false)
	m.tokens.EXPECT().ParseSubject("jwt").Return(userID, nil)
	m.users.EXPECT().IsAdmin(ctx, userID).Return(false, nil)

	err := svc.Authorize(ctx, usecase.NotifierCredentials{BearerToken: "jwt"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Authorize_InvalidBearer(t *testing.T) {
	svc, m := newTestNotificationService(t, nil)

	m.tokens.EXPECT().IsServiceKey("garbage").Return(false)
	m.tokens.EXPECT().ParseSubject("garbage").Return(uuid.Nil, errors.New("token is malformed"))

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{BearerToken: "garbage"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Authorize_AdminLookupError(t *testing.T) {
	svc, m := newTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	m.tokens.EXPECT().IsServiceKey("jwt").Return(false)
	m.tokens.EXPECT().ParseSubject("jwt").Return(userID, nil)
	m.users.EXPECT().IsAdmin(ctx, userID).Return(false, errors.New("connection refused"))

	err := svc.Authorize(ctx, usecase.NotifierCredentials{BearerToken: "jwt"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Authorize_NoCredentials(t *testing.T) {
	svc, _ := newTestNotificationService(t, &config.NotifyConfig{Secret: "s3cret"})

	err := svc.Authorize(context.Background(), usecase.NotifierCredentials{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_NotifyUser_Success(t *testing.T) {
	svc, m := newTestNotificationService(t, &config.NotifyConfig{})
	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.NotifyUserInput{
		UserID: userID,
		Title:  "Your order was delivered",
		Body:   "Enjoy your meal",
		Data:   map[string]any{"order_id": "o-42"},
	}

	var stored *entity.Notification
	var queued *entity.PushJob

	m.runTransaction(ctx)
	m.factory.EXPECT().NewNotificationRepository().Return(m.notifRepo)
	m.factory.EXPECT().NewJobQueue().Return(m.queue)
	m.notifRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { stored = n }).
		Return(nil)
	m.queue.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*entity.PushJob")).
		Run(func(_ context.Context, job *entity.PushJob) { queued = job }).
		Return(nil)

	result, err := svc.NotifyUser(ctx, input)
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.True(t, result.Enqueued)
	require.NotNil(t, stored)
	require.NotNil(t, queued)

	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, stored.ID, result.NotificationID)
	assert.Equal(t, queued.ID, result.JobID)
	assert.Equal(t, entity.PushJobPending, queued.Status)
	assert.Zero(t, queued.Attempts)
	require.NotNil(t, queued.NotificationID)
	assert.Equal(t, stored.ID, *queued.NotificationID)
	assert.Equal(t, input.Title, queued.Payload.Title)
	assert.Equal(t, "o-42", queued.Payload.Data["order_id"])
	assert.WithinDuration(t, time.Now(), queued.ScheduledAt, time.Minute)

	m.publisher.AssertNotCalled(t, "PublishQueueKick", mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyUser_KicksWorker(t *testing.T) {
	svc, m := newTestNotificationService(t, &config.NotifyConfig{KickWorker: true})
	ctx := context.Background()
	userID := uuid.New()

	m.runTransaction(ctx)
	m.factory.EXPECT().NewNotificationRepository().Return(m.notifRepo)
	m.factory.EXPECT().NewJobQueue().Return(m.queue)
	m.notifRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.queue.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().
		PublishQueueKick(ctx, &service.QueueKickEvent{RequestID: "req-1", Reason: queueKickReasonNotifyUser, UserID: userID.String()}).
		Return(errors.New("topic not found"))

	result, err := svc.NotifyUser(ctx, &usecase.NotifyUserInput{UserID: userID, Title: "t", Body: "b", RequestID: "req-1"})
	require.NoError(t, err, "a failed kick must not fail the request")
	assert.True(t, result.Enqueued)
}

func TestNotificationService_NotifyUser_TransactionFailure(t *testing.T) {
	svc, m := newTestNotificationService(t, &config.NotifyConfig{KickWorker: true})
	ctx := context.Background()

	m.runTransaction(ctx)
	m.factory.EXPECT().NewNotificationRepository().Return(m.notifRepo)
	m.factory.EXPECT().NewJobQueue().Return(m.queue)
	m.notifRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.queue.EXPECT().Enqueue(ctx, mock.Anything).Return(errors.New("unique violation"))

	result, err := svc.NotifyUser(ctx, &usecase.NotifyUserInput{UserID: uuid.New(), Title: "t", Body: "b"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEnqueueFailed)
	m.publisher.AssertNotCalled(t, "PublishQueueKick", mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyUser_Validation(t *testing.T) {
	svc, _ := newTestNotificationService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.NotifyUserInput
	}{
		{name: "nil input", input: nil},
		{name: "missing user", input: &usecase.NotifyUserInput{Title: "t", Body: "b"}},
		{name: "blank title", input: &usecase.NotifyUserInput{UserID: uuid.New(), Title: " ", Body: "b"}},
		{name: "blank body", input: &usecase.NotifyUserInput{UserID: uuid.New(), Title: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.NotifyUser(ctx, tt.input)
			assert.Nil(t, result)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}
