package postgres

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{db: db}
}

// FindActiveTokensByUsers returns active tokens, oldest first.
func (repo *pushTokenRepository) FindActiveTokensByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active", userIDs).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, &entity.PushToken{
			ID:         tokenM.ID,
			UserID:     tokenM.UserID,
			Token:      tokenM.Token,
			DeviceType: tokenM.DeviceType,
			IsActive:   tokenM.IsActive,
			CreatedAt:  tokenM.CreatedAt,
			UpdatedAt:  tokenM.UpdatedAt,
		})
	}

	return tokens, nil
}

// FindLegacyTokensByUsers reads profiles.push_token for the given users.
func (repo *pushTokenRepository) FindLegacyTokensByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var profiles []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("id", "push_token").
		Where("id IN ? AND push_token IS NOT NULL AND push_token <> ''", userIDs).
		Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find legacy push tokens")
	}

	tokens := make(map[uuid.UUID]string, len(profiles))
	for _, profile := range profiles {
		if profile.PushToken != nil {
			tokens[profile.ID] = *profile.PushToken
		}
	}

	return tokens, nil
}

// DeactivateTokens disables rejected tokens and clears matching legacy profile tokens.
func (repo *pushTokenRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.PushTokenModel{}).
		Where("token IN ? AND is_active", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}

	if err := db.Model(&model.ProfileModel{}).
		Where("push_token IN ?", tokens).
		Update("push_token", nil).Error; err != nil {
		return errors.Wrap(err, "failed to clear legacy push tokens")
	}

	return nil
}
