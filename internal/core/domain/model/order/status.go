package order

import (
	"fmt"
	"strings"

	"saddleoms/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct manufacturing workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> in_production <──> quality_control
//	                                                   │
//	                                          ready_for_shipping
//	                                                   │
//	          ┌── shipped ──> shipped_to_customer ──┐  │
//	          │        │                │           │
//	          │        └────> delivered <───────────┘
//	          │                    │
//	          └────────────────> returned
//
// Every non-final state except shipped and shipped_to_customer may also
// transition to cancelled. cancelled and returned are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status string

const (
	// StatusPending is the initial status when an order is first created.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the order has been confirmed by the customer.
	StatusConfirmed Status = "confirmed"

	// StatusInProduction indicates the saddle is being manufactured.
	StatusInProduction Status = "in_production"

	// StatusQualityControl indicates the saddle is under inspection.
	// Orders failing inspection return to in_production.
	StatusQualityControl Status = "quality_control"

	// StatusReadyForShipping indicates the saddle passed inspection and
	// awaits dispatch.
	StatusReadyForShipping Status = "ready_for_shipping"

	// StatusShipped indicates the order left the factory.
	StatusShipped Status = "shipped"

	// StatusShippedToCustomer indicates the order was handed over to the
	// customer's carrier.
	StatusShippedToCustomer Status = "shipped_to_customer"

	// StatusDelivered indicates the order reached the customer.
	// Delivered orders may still be returned.
	StatusDelivered Status = "delivered"

	// StatusCancelled is a terminal state with no further transitions.
	StatusCancelled Status = "cancelled"

	// StatusReturned is a terminal state with no further transitions.
	StatusReturned Status = "returned"
)

// statusTransitions returns the allowed-transition table. There are no
// implicit self-loops: a status is never listed as its own successor.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:           {StatusConfirmed, StatusCancelled},
		StatusConfirmed:         {StatusInProduction, StatusCancelled},
		StatusInProduction:      {StatusQualityControl, StatusCancelled},
		StatusQualityControl:    {StatusReadyForShipping, StatusInProduction, StatusCancelled},
		StatusReadyForShipping:  {StatusShipped, StatusCancelled},
		StatusShipped:           {StatusShippedToCustomer, StatusDelivered, StatusReturned},
		StatusShippedToCustomer: {StatusDelivered, StatusReturned},
		StatusDelivered:         {StatusReturned},
		StatusCancelled:         {},
		StatusReturned:          {},
	}
}

// NewStatus creates a Status from a string literal. Matching is
// case-insensitive; surrounding whitespace is ignored.
//
// Returns a ValueIsInvalidError if the string does not name one of the
// ten known statuses.
func NewStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if err := s.Validate(); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a valid status", value))
	}
	return s, nil
}

// Validate checks that the Status value is one of the ten known statuses.
// The zero value ("") and any other string are invalid.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status literal used for persistence and display.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the transition table allows moving from
// the current status to target. Pure, no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsFinal reports whether the status is terminal-for-workflow: delivered,
// cancelled or returned. Final orders reject further mutations.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// IsInProduction reports whether the order is on the factory floor, which
// covers both in_production and quality_control.
func (s Status) IsInProduction() bool {
	return s == StatusInProduction || s == StatusQualityControl
}

// CanBeCancelled reports whether an order in this status may be cancelled.
// Final orders cannot be cancelled, and neither can shipped orders: once
// shipped, an order must go through shipped_to_customer, delivered or
// returned rather than direct cancellation.
func (s Status) CanBeCancelled() bool {
	return !s.IsFinal() && s != StatusShipped
}
