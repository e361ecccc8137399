// Package order provides the Order aggregate and its status transition rules.
//
// The package includes:
//   - Order: the aggregate root holding quantities, prices, status and placement date
//   - Status: the four order statuses (Pending, Active, Completed, Shipped)
//   - TransitionPolicy: the pure decision function for status changes, including the
//     activation rule (age limit and business hours) for Pending -> Active
//   - StatusChangedEvent: the domain event raised by successful status changes
//
// Key business rules:
//   - Missing customer, product, quantity and unit price are replaced by configured defaults
//   - The total is always quantity * unit price after creation and full updates
//   - Status-only updates go through TransitionPolicy; full updates do not
//   - Rejections are ordinary results carrying a reason, never faults
package order
