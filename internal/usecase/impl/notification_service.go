package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const queueKickReasonNotifyUser = "notify_user"

type notificationService struct {
	txManager  repository.TransactionManager
	users      repository.UserRepository
	tokens     service.TokenService
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
	secret     string
	kickWorker bool
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Users     repository.UserRepository
	Tokens    service.TokenService
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	svc := &notificationService{
		txManager: params.TxManager,
		users:     params.Users,
		tokens:    params.Tokens,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if params.Config != nil && params.Config.Notify != nil {
		svc.secret = params.Config.Notify.Secret
		svc.kickWorker = params.Config.Notify.KickWorker
	}

	return svc
}

// Authorize accepts the shared notify secret, the service key, or an admin user's bearer token
func (s *notificationService) Authorize(ctx context.Context, creds usecase.NotifierCredentials) error {
	if s.secret != "" && creds.Secret != "" &&
		subtle.ConstantTimeCompare([]byte(creds.Secret), []byte(s.secret)) == 1 {
		return nil
	}

	bearer := strings.TrimSpace(creds.BearerToken)
	if bearer == "" {
		return domainerrors.ErrForbidden
	}

	if s.tokens.IsServiceKey(bearer) {
		return nil
	}

	userID, err := s.tokens.ParseSubject(bearer)
	if err != nil {
		s.logger.Debug("Rejected notify bearer token", slog.Any("error", err))

		return domainerrors.ErrForbidden
	}

	isAdmin, err := s.users.IsAdmin(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check admin flag")
	}

	if !isAdmin {
		return domainerrors.ErrForbidden
	}

	return nil
}

// NotifyUser stores the notification and its push job atomically; delivery is left to the worker
func (s *notificationService) NotifyUser(ctx context.Context, input *usecase.NotifyUserInput) (*usecase.NotifyUserResult, error) {
	if input == nil || input.UserID == uuid.Nil ||
		strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id, title and body are required")
	}

	now := s.now()
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Title:     input.Title,
		Body:      input.Body,
		Data:      input.Data,
		CreatedAt: now,
	}

	notificationID := notification.ID
	job := &entity.PushJob{
		ID:             uuid.New(),
		UserID:         input.UserID,
		NotificationID: &notificationID,
		Payload: entity.PushPayload{
			Title: input.Title,
			Body:  input.Body,
			Data:  input.Data,
		},
		Status:      entity.PushJobPending,
		ScheduledAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewNotificationRepository().CreateNotification(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		if err := factory.NewJobQueue().Enqueue(ctx, job); err != nil {
			return errors.Wrap(err, "failed to enqueue push job")
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Failed to store notification", slog.String("user_id", input.UserID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrEnqueueFailed
	}

	s.kick(ctx, input)

	return &usecase.NotifyUserResult{
		OK:             true,
		Enqueued:       true,
		NotificationID: notification.ID,
		JobID:          job.ID,
	}, nil
}

// kick asks a worker to drain now. The job is already durable, so failures only log.
func (s *notificationService) kick(ctx context.Context, input *usecase.NotifyUserInput) {
	if !s.kickWorker || s.publisher == nil {
		return
	}

	event := &service.QueueKickEvent{
		RequestID: input.RequestID,
		Reason:    queueKickReasonNotifyUser,
		UserID:    input.UserID.String(),
	}

	if err := s.publisher.PublishQueueKick(ctx, event); err != nil {
		s.logger.Warn("Failed to publish queue kick", slog.Any("error", err))
	}
}
