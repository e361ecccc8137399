package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the mutable fields of an existing order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	params  order.Params

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the identifier and the shape of the input.
func NewUpdateOrderCommand(orderID int64, input OrderInput) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	params, paramsErr := toParams(input)
	if err := errors.Join(validateOrderID(orderID), paramsErr); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.params = params
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) Params() order.Params {
	return c.params
}
