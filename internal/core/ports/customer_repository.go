package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/product"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)
}

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id int64) (*product.Product, error)
}
