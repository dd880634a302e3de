package postgres

import (
	"context"

	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// IsAdmin reads the admin flag from the user's profile.
func (repo *userRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var profile model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("id", "is_admin").
		Where("id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read admin flag")
	}

	return profile.IsAdmin, nil
}
