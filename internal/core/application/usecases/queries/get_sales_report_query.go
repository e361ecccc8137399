package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery summarizes all stored orders per product and per status.
type GetSalesReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSalesReportQuery() GetSalesReportQuery {
	return GetSalesReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}
