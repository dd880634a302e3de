package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	Data      JSONMap   `gorm:"type:jsonb"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// AppSettingModel is a key/value row of the 'app_settings' table.
type AppSettingModel struct {
	Key       string `gorm:"type:text;primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppSettingModel) TableName() string {
	return "app_settings"
}
