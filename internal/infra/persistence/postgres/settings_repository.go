package postgres

import (
	"context"
	"strconv"
	"strings"

	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const baseFeePerKmKey = "base_fee_per_km"

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetBaseFeePerKm reads and parses the base_fee_per_km setting.
func (repo *settingsRepository) GetBaseFeePerKm(ctx context.Context) (float64, error) {
	raw, err := repo.get(ctx, baseFeePerKmKey)
	if err != nil {
		return 0, err
	}

	fee, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "setting %s is not a number", baseFeePerKmKey)
	}

	return fee, nil
}

func (repo *settingsRepository) get(ctx context.Context, key string) (string, error) {
	var setting model.AppSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSettingNotFound
		}

		return "", errors.Wrapf(err, "failed to read setting %s", key)
	}

	return setting.Value, nil
}
