package queries

import (
	"errors"
	"time"

	"saddleoms/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
)

// GetOverdueOrdersQuery retrieves all active orders whose estimated
// delivery date has passed. Feeds the periodic overdue sweep.
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for overdue orders.
// This is a parameterless query evaluated against the current time.
func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// OverdueOrderResponse represents one overdue order for reporting.
type OverdueOrderResponse struct {
	ID                    int64
	OrderNumber           string
	CustomerName          string
	Status                string
	Priority              string
	EstimatedDeliveryDate time.Time
}
