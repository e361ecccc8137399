package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
)

// Rejection reasons returned by TransitionPolicy. They are shown to API clients verbatim.
const (
	ReasonInvalidStatus         = "Invalid status"
	ReasonInvalidTransition     = "Invalid status transition"
	ReasonCannotReactivate      = "Cannot reactivate completed order"
	ReasonCannotChangeShipped   = "Cannot change shipped order"
	ReasonCannotCompletePending = "Cannot complete pending order"
	ReasonCanOnlyShipActive     = "Can only ship active orders"
	ReasonCannotRevertToPending = "Cannot revert to pending"
	ReasonOrderTooOld           = "Order too old"
	ReasonCannotActivateBefore  = "Cannot activate before hours"
	ReasonCannotActivateAfter   = "Cannot activate after hours"
)

const (
	defaultMaxDaysForActivation = 30
	defaultBusinessHoursStart   = 8
	defaultBusinessHoursEnd     = 18
	hoursPerDay                 = 24
)

// Decision is the outcome of a transition check. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func reject(reason string) Decision {
	return Decision{Reason: reason}
}

// PolicyConfig holds the tunables of the activation rule.
type PolicyConfig struct {
	// MaxDaysForActivation is the age in whole days from which a pending order can no longer be activated.
	MaxDaysForActivation int
	// BusinessHoursStart and BusinessHoursEnd bound the placement hour of same-day activations (both exclusive).
	BusinessHoursStart int
	BusinessHoursEnd   int
	// Location is the time zone the placement hour is read in. Nil means time.Local.
	Location *time.Location
}

// DefaultPolicyConfig returns 30 days and business hours 8-18 in local time.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MaxDaysForActivation: defaultMaxDaysForActivation,
		BusinessHoursStart:   defaultBusinessHoursStart,
		BusinessHoursEnd:     defaultBusinessHoursEnd,
		Location:             time.Local,
	}
}

// TransitionPolicy decides whether an order may move from one status to another.
// It is a pure function of its inputs: it never reads the clock and never fails.
type TransitionPolicy struct {
	cfg PolicyConfig
}

// NewTransitionPolicy validates cfg and builds a policy from it.
func NewTransitionPolicy(cfg PolicyConfig) (TransitionPolicy, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	if err := errors.Join(
		validateHour("business hours start", cfg.BusinessHoursStart),
		validateHour("business hours end", cfg.BusinessHoursEnd),
	); err != nil {
		return TransitionPolicy{}, err
	}
	if cfg.MaxDaysForActivation <= 0 {
		return TransitionPolicy{}, errs.NewValueIsOutOfRangeError(
			"max days for activation", cfg.MaxDaysForActivation, 1, "unbounded")
	}
	if cfg.BusinessHoursStart >= cfg.BusinessHoursEnd {
		return TransitionPolicy{}, errs.NewValueIsOutOfRangeError(
			"business hours start", cfg.BusinessHoursStart, 0, cfg.BusinessHoursEnd-1)
	}

	return TransitionPolicy{cfg: cfg}, nil
}

// DefaultTransitionPolicy returns the policy built from DefaultPolicyConfig.
func DefaultTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{cfg: DefaultPolicyConfig()}
}

func validateHour(name string, hour int) error {
	if hour < 0 || hour >= hoursPerDay {
		return errs.NewValueIsOutOfRangeError(name, hour, 0, hoursPerDay-1)
	}
	return nil
}

// Config returns the configuration the policy was built with.
func (p TransitionPolicy) Config() PolicyConfig {
	return p.cfg
}

// Evaluate decides whether current may change to requested for an order placed at placedAt,
// evaluated at now.
//
// The guards are keyed by the requested status:
//   - Active: rejected from Completed and Shipped; from Pending the activation rule applies.
//   - Completed: rejected from Pending.
//   - Shipped: only from Active.
//   - Pending: rejected only from Active, so Completed and Shipped orders may return to Pending.
//
// The current status is trusted as persisted; only requested is validated.
func (p TransitionPolicy) Evaluate(current, requested Status, placedAt, now time.Time) Decision {
	if requested.Validate() != nil {
		return reject(ReasonInvalidStatus)
	}

	switch requested {
	case Active:
		switch current {
		case Completed:
			return reject(ReasonCannotReactivate)
		case Shipped:
			return reject(ReasonCannotChangeShipped)
		case Pending:
			return p.evaluateActivation(placedAt, now)
		default:
			return allow()
		}

	case Completed:
		switch current {
		case Pending:
			return reject(ReasonCannotCompletePending)
		case Active, Shipped, Completed:
			return allow()
		default:
			return reject(ReasonInvalidTransition)
		}

	case Shipped:
		if current != Active {
			return reject(ReasonCanOnlyShipActive)
		}
		return allow()

	case Pending:
		if current == Active {
			return reject(ReasonCannotRevertToPending)
		}
		return allow()
	}

	return reject(ReasonInvalidStatus)
}

// evaluateActivation applies the age and business hour gate of Pending -> Active.
// The hour checked is the placement hour of the order, not the hour of evaluation.
func (p TransitionPolicy) evaluateActivation(placedAt, now time.Time) Decision {
	days := DaysBetween(placedAt, now)

	if days >= p.cfg.MaxDaysForActivation {
		return reject(ReasonOrderTooOld)
	}

	if days == 0 {
		hour := placedAt.In(p.cfg.Location).Hour()
		if hour <= p.cfg.BusinessHoursStart {
			return reject(ReasonCannotActivateBefore)
		}
		if hour >= p.cfg.BusinessHoursEnd {
			return reject(ReasonCannotActivateAfter)
		}
	}

	return allow()
}

// DaysBetween returns the whole 24h periods elapsed from "from" to "to", truncated toward zero.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (hoursPerDay * time.Hour))
}
