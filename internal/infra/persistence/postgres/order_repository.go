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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindOrderForOffer joins through order_offers so a driver only sees orders offered to them.
func (repo *orderRepository) FindOrderForOffer(ctx context.Context, offerID, driverID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Joins("JOIN order_offers ON order_offers.order_id = orders.id").
		Where("order_offers.id = ? AND order_offers.driver_id = ?", offerID, driverID).
		Select("orders.*").
		Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for offer")
	}

	return toOrderDomain(&orderM), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		MerchantID:  data.MerchantID,
		DriverID:    data.DriverID,
		Status:      entity.OrderStatus(data.Status),
		Total:       data.Total,
		DeliveryFee: data.DeliveryFee,
		Address:     data.DeliveryAddress,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
