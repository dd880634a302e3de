package postgres

import (
	"strings"

	"courier/internal/errors"

	"gorm.io/gorm"
)

// isForeignKeyConstraintViolation matches SQLSTATE 23503 whether or not gorm translated it.
func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23503")
}

// isNotNullConstraintViolation matches SQLSTATE 23502.
func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23502") || strings.Contains(msg, "null value in column")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23514")
}
