package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
type PushTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:text;not null;uniqueIndex"`
	DeviceType string    `gorm:"type:text;not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}

// ProfileModel is the subset of the 'profiles' table this service reads.
// PushToken is the legacy single-device token kept for clients that predate push_tokens.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	PushToken *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
