package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderInput carries the fields of an order as received from a client.
// Zero values mean "not supplied" and are resolved by the aggregate.
type OrderInput struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Status     string
	Date       time.Time
	Notes      string
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(OrderInput{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	// created.Status() == order.Pending, created.Total().String() == "21.00"
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	params order.Params

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of the input.
// Zero values are accepted since they are replaced with defaults; negatives are not.
func NewCreateOrderCommand(input OrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	params, err := toParams(input)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.params = params

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Params returns the order fields to create.
func (c CreateOrderCommand) Params() order.Params {
	return c.params
}

func toParams(input OrderInput) (order.Params, error) {
	var statusErr error
	status := order.Status(input.Status)
	if !status.IsEmpty() {
		statusErr = status.Validate()
	}

	if err := errors.Join(
		notNegative("customerId", input.CustomerID),
		notNegative("productId", input.ProductID),
		notNegative("quantity", int64(input.Quantity)),
		kernel.CheckAmount("unitPrice", input.UnitPrice),
		statusErr,
	); err != nil {
		return order.Params{}, err
	}
	if input.Quantity > 0 {
		total := input.UnitPrice.Mul(decimal.NewFromInt(int64(input.Quantity)))
		if err := kernel.CheckAmount("total", total); err != nil {
			return order.Params{}, err
		}
	}

	return order.Params{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		Status:     status,
		Date:       input.Date,
		Notes:      input.Notes,
	}, nil
}

func notNegative(name string, value int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", value))
	}
	return nil
}
