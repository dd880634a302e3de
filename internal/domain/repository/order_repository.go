package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found or not visible to the caller.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository reads orders for realtime consumers.
type OrderRepository interface {
	// FindOrderForOffer returns the order behind an offer, only if the offer belongs to driverID.
	FindOrderForOffer(ctx context.Context, offerID, driverID uuid.UUID) (*entity.Order, error)
}
