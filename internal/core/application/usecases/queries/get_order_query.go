// Package queries contains read-only operations of the ordering service.
// Handlers read straight from the database through GORM and return flat read models,
// bypassing the aggregates as the read side of CQRS.
package queries

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	Status     string
	PlacedAt   time.Time
	Notes      string
}

// GetOrderQuery retrieves one order by identifier.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
