package queries

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type CustomerResponse struct {
	ID    int64
	Name  string
	Email string
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0)
	err := h.db.WithContext(ctx).
		Raw(`SELECT id, name, email FROM customers ORDER BY id`).
		Scan(&customers).Error
	if err != nil {
		return nil, errs.NewPersistenceErrorWithCause("list customers", err)
	}

	return customers, nil
}
