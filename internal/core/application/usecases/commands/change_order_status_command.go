package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a status-only update.
//
// The requested status is not checked against the known statuses here: an unknown
// value is rejected by the transition policy with the "Invalid status" reason.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(42, "Shipped")
//	if err != nil {
//	    return err // empty status
//	}
//	_, err = handler.Handle(ctx, cmd)
//	var rejected *errs.TransitionRejectedError
//	if errors.As(err, &rejected) {
//	    fmt.Println(rejected.Reason) // e.g. "Can only ship active orders"
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand rejects an empty status before anything is loaded.
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	requested := order.Status(status)
	var statusErr error
	if requested.IsEmpty() {
		statusErr = errs.NewValueIsRequiredError("status")
	}

	if err := errors.Join(statusErr, validateOrderID(orderID)); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = requested
	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func validateOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
