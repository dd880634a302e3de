package model

import (
	"time"

	"github.com/google/uuid"
)

// PushJobModel is the GORM-specific struct for the 'push_jobs' table.
// The payload is split into columns so the queue can be inspected with plain SQL.
type PushJobModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	NotificationID *uuid.UUID `gorm:"type:uuid"`
	Title          string     `gorm:"type:text;not null"`
	Body           string     `gorm:"type:text;not null"`
	Data           JSONMap    `gorm:"type:jsonb"`
	Status         string     `gorm:"type:text;not null;default:'pending'"`
	Attempts       int        `gorm:"not null;default:0"`
	ScheduledAt    time.Time  `gorm:"not null"`
	ProcessedAt    *time.Time
	LastError      string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushJobModel) TableName() string {
	return "push_jobs"
}
