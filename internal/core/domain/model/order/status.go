package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// Legal changes between statuses are decided by TransitionPolicy.
//
// State transitions (requested status on the right):
//
//	Pending ──(activation rule)──> Active ──┬──> Completed
//	                                        └──> Shipped ──> Completed
//
// Status is a value object. It is persisted and exchanged as its string form.
type Status string

const (
	// Pending is the initial status of every order.
	Pending Status = "Pending"

	// Active orders have passed the activation rule and may be completed or shipped.
	Active Status = "Active"

	// Completed orders are finished. They cannot be reactivated.
	Completed Status = "Completed"

	// Shipped orders have left the warehouse and can no longer be reactivated.
	Shipped Status = "Shipped"
)

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Active, Completed, Shipped}
}

// Validate checks if the Status value is one of the four known statuses.
// The comparison is exact: "active" is not a valid status.
func (s Status) Validate() error {
	for _, valid := range AllStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
}

// IsEmpty reports whether no status was supplied.
func (s Status) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input into a valid Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
