package repository

import (
	"context"

	"courier/internal/errors"
)

// ErrSettingNotFound is returned when a setting key has no row.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository reads remotely configured application settings.
type SettingsRepository interface {
	// GetBaseFeePerKm returns the delivery fee per started kilometer.
	GetBaseFeePerKm(ctx context.Context) (float64, error)
}
