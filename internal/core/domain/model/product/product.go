// Package product holds the Product aggregate referenced by orders.
package product

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrIDIsAlreadyAssigned     = errors.New("product id is already assigned")
)

// Product is a catalogue item. The list price is informational: orders carry
// their own unit price.
type Product struct {
	id    int64
	name  string
	price kernel.Money

	isConstructed bool
}

// NewProduct creates a product that has not been stored yet.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	money, priceErr := kernel.NewMoney(price)
	if err := errors.Join(nameErr, priceErr); err != nil {
		return nil, err
	}

	return &Product{name: name, price: money, isConstructed: true}, nil
}

// RestoreProduct rebuilds a product loaded from persistence.
func RestoreProduct(id int64, name string, price decimal.Decimal) (*Product, error) {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return nil, err
	}
	return &Product{id: id, name: name, price: money, isConstructed: true}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64           { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() kernel.Money { return p.price }

// AssignID records the identifier generated by the store.
func (p *Product) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if p.id != 0 && p.id != id {
		return ErrIDIsAlreadyAssigned
	}
	p.id = id
	return nil
}
