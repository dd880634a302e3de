package service

import (
	"github.com/google/uuid"
)

// TokenService validates bearer tokens presented by callers.
type TokenService interface {
	// ParseSubject validates tokenString and returns the user ID in its subject claim.
	ParseSubject(tokenString string) (uuid.UUID, error)

	// IsServiceKey reports whether tokenString is the configured backend service key.
	IsServiceKey(tokenString string) bool
}
