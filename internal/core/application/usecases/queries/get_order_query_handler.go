package queries

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderColumns = "id, customer_id, product_id, quantity, unit_price, total, status, placed_at, notes"

// GetOrderQueryHandler loads a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var response OrderResponse
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ?", query.OrderID()).
		Take(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, errs.NewPersistenceErrorWithCause("select order", err)
	}

	return response, nil
}
