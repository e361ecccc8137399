package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders matching optional equality filters.
// A nil filter matches everything. The status filter is compared verbatim,
// so an unknown status simply matches nothing.
//
// Example:
//
//	status := "Pending"
//	query := NewListOrdersQuery(&status, nil)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status     *string
	customerID *int64

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status *string, customerID *int64) ListOrdersQuery {
	return ListOrdersQuery{
		status:     status,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *string {
	return q.status
}

func (q ListOrdersQuery) CustomerID() *int64 {
	return q.customerID
}
