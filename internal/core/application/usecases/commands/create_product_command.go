package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a catalogue item.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name string, price decimal.Decimal) (CreateProductCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(nameErr, kernel.CheckAmount("price", price)); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string           { return c.name }
func (c CreateProductCommand) Price() decimal.Decimal { return c.price }
