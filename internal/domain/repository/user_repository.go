package repository

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository answers profile-level questions about users.
type UserRepository interface {
	// IsAdmin reports whether the user holds the admin flag. Unknown users are not admins.
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
