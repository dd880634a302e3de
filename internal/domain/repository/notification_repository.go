package repository

import (
	"context"

	"courier/internal/domain/entity"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification row.
	CreateNotification(ctx context.Context, notification *entity.Notification) error
}
