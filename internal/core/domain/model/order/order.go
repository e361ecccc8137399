package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDIsAlreadyAssigned is returned when the store tries to assign an identifier twice.
	ErrIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// Defaults are substituted for zero values when an order is created.
// They come from configuration rather than package level state.
type Defaults struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
	UnitPrice  kernel.Money
}

// StandardDefaults returns the defaults the service ships with: 1 for every field.
func StandardDefaults() Defaults {
	return Defaults{
		CustomerID: 1,
		ProductID:  1,
		Quantity:   1,
		UnitPrice:  kernel.MustNewMoney(decimal.NewFromInt(1)),
	}
}

// Params carries the caller supplied fields of an order. Zero values mean "not supplied".
type Params struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Status     Status
	Date       time.Time
	Notes      string
}

// Order is the aggregate root of the ordering domain.
//
// Order follows these invariants:
//   - quantity is positive and unitPrice is not negative
//   - unitPrice and total never exceed kernel.MaxAmount
//   - total equals quantity * unitPrice after creation and after every full update
//   - status is one of the four known statuses
//   - the identifier is assigned once by the store and never changes afterwards
type Order struct {
	id         int64
	customerID int64
	productID  int64
	quantity   int
	unitPrice  kernel.Money
	total      kernel.Money
	status     Status
	date       time.Time
	notes      string

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewOrder creates an order that has not been stored yet.
//
// Zero CustomerID, ProductID, Quantity and UnitPrice are replaced with defaults,
// an empty Status becomes Pending and a zero Date becomes now.
// Negative values and unknown statuses are rejected.
//
// Example:
//
//	o, err := order.NewOrder(order.Params{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
//	    order.StandardDefaults(), clock.Now())
//	// o.Status() == order.Pending, o.Total().String() == "21.00"
func NewOrder(params Params, defaults Defaults, now time.Time) (*Order, error) {
	if params.CustomerID == 0 {
		params.CustomerID = defaults.CustomerID
	}
	if params.ProductID == 0 {
		params.ProductID = defaults.ProductID
	}
	if params.Quantity == 0 {
		params.Quantity = defaults.Quantity
	}
	if params.UnitPrice.IsZero() {
		params.UnitPrice = defaults.UnitPrice.Decimal()
	}
	if params.Status.IsEmpty() {
		params.Status = Pending
	}
	if params.Date.IsZero() {
		params.Date = now
	}

	o := &Order{isConstructed: true}
	if err := o.apply(params); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. The stored total is kept as is,
// since a status-only update never recomputes it.
func RestoreOrder(
	id int64,
	customerID, productID int64,
	quantity int,
	unitPrice, total decimal.Decimal,
	status Status,
	date time.Time,
	notes string,
) (*Order, error) {
	price, priceErr := kernel.NewMoney(unitPrice)
	sum, totalErr := kernel.NewMoney(total)
	if err := errors.Join(priceErr, totalErr, status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     price,
		total:         sum,
		status:        status,
		date:          date,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64               { return o.id }
func (o *Order) CustomerID() int64       { return o.customerID }
func (o *Order) ProductID() int64        { return o.productID }
func (o *Order) Quantity() int           { return o.quantity }
func (o *Order) UnitPrice() kernel.Money { return o.unitPrice }
func (o *Order) Total() kernel.Money     { return o.total }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Date() time.Time         { return o.date }
func (o *Order) Notes() string           { return o.notes }

// AssignID records the identifier generated by the store. It can only happen once.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 && o.id != id {
		return ErrIDIsAlreadyAssigned
	}
	o.id = id
	return nil
}

// Update replaces every mutable field and recomputes the total.
// An empty Status or zero Date keeps the current value. The transition policy is
// not consulted: a full update is an administrative overwrite.
func (o *Order) Update(params Params) error {
	if params.Status.IsEmpty() {
		params.Status = o.status
	}
	if params.Date.IsZero() {
		params.Date = o.date
	}

	next := *o
	if err := next.apply(params); err != nil {
		return err
	}

	o.customerID = next.customerID
	o.productID = next.productID
	o.quantity = next.quantity
	o.unitPrice = next.unitPrice
	o.total = next.total
	o.status = next.status
	o.date = next.date
	o.notes = next.notes
	return nil
}

// ChangeStatus moves the order to requested if policy allows it at now.
//
// Returns:
//   - ValueIsRequiredError when requested is empty
//   - TransitionRejectedError carrying the policy reason when the change is not allowed
//
// On success a StatusChanged event is recorded. Only the status is touched.
func (o *Order) ChangeStatus(requested Status, policy TransitionPolicy, now time.Time) error {
	if requested.IsEmpty() {
		return errs.NewValueIsRequiredError("status")
	}

	decision := policy.Evaluate(o.status, requested, o.date, now)
	if !decision.Allowed {
		return errs.NewTransitionRejectedError(o.status.String(), requested.String(), decision.Reason)
	}

	previous := o.status
	o.status = requested
	o.raise(NewStatusChangedEvent(o.id, previous, requested, now))
	return nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.events
}

// ClearDomainEvents drops recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) apply(params Params) error {
	price, priceErr := kernel.NewMoney(params.UnitPrice)

	if err := errors.Join(
		validateReference("customerId", params.CustomerID),
		validateReference("productId", params.ProductID),
		validateQuantity(params.Quantity),
		priceErr,
		params.Status.Validate(),
	); err != nil {
		return err
	}

	total := price.Multiply(params.Quantity)
	if err := kernel.CheckAmount("total", total.Decimal()); err != nil {
		return err
	}

	o.customerID = params.CustomerID
	o.productID = params.ProductID
	o.quantity = params.Quantity
	o.unitPrice = price
	o.total = total
	o.status = params.Status
	o.date = params.Date
	o.notes = params.Notes
	return nil
}

func validateReference(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
