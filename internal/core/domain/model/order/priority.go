package order

import (
	"fmt"
	"strings"

	"saddleoms/internal/pkg/errs"
)

// Priority represents the production priority of an order. It is an
// ordered value object: each level carries a numeric weight used for
// comparison and tie-breaking, and a display color for dashboards.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

// priorityWeights returns the fixed ordering low < normal < high < urgent < critical.
func priorityWeights() map[Priority]int {
	return map[Priority]int{
		PriorityLow:      1,
		PriorityNormal:   2,
		PriorityHigh:     3,
		PriorityUrgent:   4,
		PriorityCritical: 5,
	}
}

// priorityColors returns the display color per level.
func priorityColors() map[Priority]string {
	return map[Priority]string{
		PriorityLow:      "#9e9e9e",
		PriorityNormal:   "#2196f3",
		PriorityHigh:     "#ff9800",
		PriorityUrgent:   "#f44336",
		PriorityCritical: "#b71c1c",
	}
}

// NewPriority creates a Priority from a string literal. Matching is
// case-insensitive; surrounding whitespace is ignored.
//
// Returns a ValueIsInvalidError if the string does not name one of the
// five known levels.
func NewPriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	if err := p.Validate(); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%s is not a valid priority", value))
	}
	return p, nil
}

// Validate checks that the Priority value is one of the five known levels.
func (p Priority) Validate() error {
	if _, ok := priorityWeights()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
	return nil
}

// String returns the priority literal used for persistence and display.
func (p Priority) String() string {
	return string(p)
}

// Weight returns the numeric weight of the priority, 1 (low) through
// 5 (critical). Unknown priorities weigh 0.
func (p Priority) Weight() int {
	return priorityWeights()[p]
}

// Color returns the display color associated with the priority.
func (p Priority) Color() string {
	return priorityColors()[p]
}

// IsUrgent reports whether the priority demands expedited handling.
// Only urgent and critical qualify; high does not.
func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent || p == PriorityCritical
}

// IsHigherThan reports whether p outranks other by weight.
func (p Priority) IsHigherThan(other Priority) bool {
	return p.Weight() > other.Weight()
}

// IsLowerThan reports whether p ranks below other by weight.
func (p Priority) IsLowerThan(other Priority) bool {
	return p.Weight() < other.Weight()
}
