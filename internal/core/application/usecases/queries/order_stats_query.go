package queries

import (
	"errors"

	"saddleoms/internal/pkg/guard"
)

var (
	ErrOrderStatsQueryIsNotConstructed = errors.New(
		"OrderStatsQuery must be created via NewOrderStatsQuery constructor",
	)
)

// OrderStatsQuery computes aggregate statistics over the orders matching
// a filter set. The same filters as SearchOrders apply; statistics are
// computed over the filtered predicate, not the full collection.
type OrderStatsQuery struct {
	filters OrderFilters

	guard guard.ConstructorGuard
}

// NewOrderStatsQuery creates a stats query over the given filter set.
func NewOrderStatsQuery(filters OrderFilters) (OrderStatsQuery, error) {
	if err := filters.validate(); err != nil {
		return OrderStatsQuery{}, err
	}

	return OrderStatsQuery{
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatsQueryIsNotConstructed)
}

// Filters returns the filter set the statistics are computed over.
func (q OrderStatsQuery) Filters() OrderFilters { return q.filters }

// OrderStatsResponse holds the aggregate figures for a filtered order set.
type OrderStatsResponse struct {
	Total              int64
	Urgent             int64
	ByStatus           map[string]int64
	AverageTotalAmount float64
}
