package order

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// StatusChangedEventName is the name published for status changes.
const StatusChangedEventName = "order.status_changed"

// StatusChangedEvent is raised when ChangeStatus succeeds.
type StatusChangedEvent struct {
	ID        uuid.UUID `json:"eventId"`
	OrderID   int64     `json:"orderId"`
	From      Status    `json:"from"`
	To        Status    `json:"to"`
	ChangedAt time.Time `json:"changedAt"`
}

// NewStatusChangedEvent builds the event with a fresh identifier.
func NewStatusChangedEvent(orderID int64, from, to Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		ID:        uuid.New(),
		OrderID:   orderID,
		From:      from,
		To:        to,
		ChangedAt: at,
	}
}

func (e StatusChangedEvent) EventID() uuid.UUID    { return e.ID }
func (e StatusChangedEvent) EventName() string     { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateKey() string  { return strconv.FormatInt(e.OrderID, 10) }
func (e StatusChangedEvent) OccurredAt() time.Time { return e.ChangedAt }
