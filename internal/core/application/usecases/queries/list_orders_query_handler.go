package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists order read models sorted by identifier.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", *status)
	}
	if customerID := query.CustomerID(); customerID != nil {
		tx = tx.Where("customer_id = ?", *customerID)
	}

	orders := make([]OrderResponse, 0)
	if err := tx.Order("id").Scan(&orders).Error; err != nil {
		return nil, errs.NewPersistenceErrorWithCause("list orders", err)
	}

	return orders, nil
}
