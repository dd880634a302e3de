package impl

import (
	"context"
	"log/slog"

	"courier/internal/domain/repository"
	"courier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolvePushTargets maps each user to its distinct delivery tokens: active registered tokens first,
// then the legacy profile token. A failed legacy lookup only logs.
func resolvePushTargets(
	ctx context.Context,
	repo repository.PushTokenRepository,
	logger *slog.Logger,
	userIDs []uuid.UUID,
) (map[uuid.UUID][]string, error) {
	userIDs = util.Unique(userIDs)
	targets := make(map[uuid.UUID][]string, len(userIDs))
	if len(userIDs) == 0 {
		return targets, nil
	}

	active, err := repo.FindActiveTokensByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	for _, token := range active {
		if token.Token == "" {
			continue
		}
		targets[token.UserID] = append(targets[token.UserID], token.Token)
	}

	legacy, err := repo.FindLegacyTokensByUsers(ctx, userIDs)
	if err != nil {
		logger.Warn("Failed to read legacy push tokens", slog.Any("error", err))
	}

	for userID, token := range legacy {
		if token == "" {
			continue
		}
		targets[userID] = append(targets[userID], token)
	}

	for userID, tokens := range targets {
		targets[userID] = util.Unique(tokens)
	}

	return targets, nil
}
