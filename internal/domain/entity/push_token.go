package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PushToken is a device delivery target registered by a user.
type PushToken struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Token      string    `json:"token"`
	DeviceType string    `json:"device_type"` // ios, android, web
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsExpoPushToken reports whether token is addressed through the Expo relay rather than raw FCM.
func IsExpoPushToken(token string) bool {
	return strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")
}

// PushMessage is one outbound message for one device token.
type PushMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Sound string         `json:"sound,omitempty"`
	Data  map[string]any `json:"data,omitempty"`

	// IdempotencyKey identifies the message across retries; never sent to the gateway.
	IdempotencyKey string `json:"-"`
}
