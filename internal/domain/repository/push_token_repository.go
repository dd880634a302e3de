package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
)

// PushTokenRepository resolves delivery targets for users.
type PushTokenRepository interface {
	// FindActiveTokensByUsers returns active tokens for the given users.
	FindActiveTokensByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushToken, error)

	// FindLegacyTokensByUsers returns the single token stored on the profile row, keyed by user.
	// Users without one are absent from the map.
	FindLegacyTokensByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)

	// DeactivateTokens marks tokens rejected by the gateway as inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error
}
