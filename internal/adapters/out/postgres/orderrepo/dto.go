// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
// Amounts are stored as fixed point numerics so totals never drift through float rounding.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID int64           `gorm:"not null;index"`
	ProductID  int64           `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"type:varchar(16);not null;index"`
	PlacedAt   time.Time       `gorm:"not null"`
	Notes      string          `gorm:"type:text"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		ProductID:  aggregate.ProductID(),
		Quantity:   aggregate.Quantity(),
		UnitPrice:  aggregate.UnitPrice().Decimal(),
		Total:      aggregate.Total().Decimal(),
		Status:     aggregate.Status().String(),
		PlacedAt:   aggregate.Date(),
		Notes:      aggregate.Notes(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.ProductID,
		dto.Quantity,
		dto.UnitPrice,
		dto.Total,
		order.Status(dto.Status),
		dto.PlacedAt,
		dto.Notes,
	)
}
