package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer orders can refer to.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name, email string) (CreateCustomerCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateCustomerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCustomerCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string  { return c.name }
func (c CreateCustomerCommand) Email() string { return c.email }
