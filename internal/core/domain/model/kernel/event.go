package kernel

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact raised by an aggregate and published after its
// changes have been committed.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	// AggregateKey identifies the aggregate; publishers use it as the message key.
	AggregateKey() string
	OccurredAt() time.Time
}
