// Package kernel provides core domain primitives shared by the ordering domain model.
//
// The package includes:
//   - Money: a non-negative monetary amount backed by an arbitrary precision decimal
//   - Clock: an injectable time source so time based business rules stay testable
//   - DomainEvent: the contract for events raised by aggregates
//
// These primitives enforce domain invariants and are immutable, making them
// safe to share between goroutines.
package kernel
