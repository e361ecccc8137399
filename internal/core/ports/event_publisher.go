package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to the outside world.
// Publish is called after the transaction that raised the events has committed,
// so a failure here never undoes stored state.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
