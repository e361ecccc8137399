// Package customer holds the Customer aggregate referenced by orders.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"ordering/internal/pkg/errs"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	ErrIDIsAlreadyAssigned      = errors.New("customer id is already assigned")
)

// Customer is the buyer an order belongs to. Name is required, email is optional.
type Customer struct {
	id    int64
	name  string
	email string

	isConstructed bool
}

// NewCustomer creates a customer that has not been stored yet.
func NewCustomer(name, email string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(c.setName(name), c.setEmail(email)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from persistence.
func RestoreCustomer(id int64, name, email string) *Customer {
	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		isConstructed: true,
	}
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() int64     { return c.id }
func (c *Customer) Name() string  { return c.name }
func (c *Customer) Email() string { return c.email }

// AssignID records the identifier generated by the store.
func (c *Customer) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if c.id != 0 && c.id != id {
		return ErrIDIsAlreadyAssigned
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}
