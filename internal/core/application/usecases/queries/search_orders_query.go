package queries

import (
	"errors"
	"strings"
	"time"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	defaultSortBy  = "created_at"
	sortAscending  = "asc"
	sortDescending = "desc"
)

// sortableColumns is the whitelist of physical columns a caller may sort
// by. Anything outside the whitelist is rejected, never interpolated.
var sortableColumns = map[string]struct{}{
	"created_at":              {},
	"updated_at":              {},
	"order_number":            {},
	"total_amount":            {},
	"status":                  {},
	"estimated_delivery_date": {},
}

// SearchOrdersQuery retrieves a page of orders matching a conjunctive
// filter set, with whitelisted single-field sorting.
//
// Example:
//
//	query, err := NewSearchOrdersQuery(OrderFilters{CustomerName: "keller"},
//	    1, 20, "total_amount", "asc")
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
type SearchOrdersQuery struct {
	filters OrderFilters
	page    int
	limit   int
	sortBy  string
	sortDir string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates an order search query. Page defaults to 1
// and limit to 20 when non-positive; a limit above 100 is silently
// clamped to 100, not rejected. Empty sort parameters default to
// created_at descending; an unknown sort field or direction is an error.
func NewSearchOrdersQuery(filters OrderFilters, page, limit int, sortBy, sortDir string) (SearchOrdersQuery, error) {
	if err := filters.validate(); err != nil {
		return SearchOrdersQuery{}, err
	}

	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if _, ok := sortableColumns[sortBy]; !ok {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
	}

	sortDir = strings.ToLower(strings.TrimSpace(sortDir))
	if sortDir == "" {
		sortDir = sortDescending
	}
	if sortDir != sortAscending && sortDir != sortDescending {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("sortDir")
	}

	return SearchOrdersQuery{
		filters: filters,
		page:    page,
		limit:   limit,
		sortBy:  sortBy,
		sortDir: sortDir,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Filters returns the conjunctive filter set.
func (q SearchOrdersQuery) Filters() OrderFilters { return q.filters }

// Page returns the 1-based page number.
func (q SearchOrdersQuery) Page() int { return q.page }

// Limit returns the effective page size after defaulting and clamping.
func (q SearchOrdersQuery) Limit() int { return q.limit }

// SortBy returns the whitelisted sort column.
func (q SearchOrdersQuery) SortBy() string { return q.sortBy }

// SortDir returns the sort direction, "asc" or "desc".
func (q SearchOrdersQuery) SortDir() string { return q.sortDir }

// Offset returns the row offset implied by page and limit.
func (q SearchOrdersQuery) Offset() int { return (q.page - 1) * q.limit }

// OrderResponse is the read-model projection of a stored order.
type OrderResponse struct {
	ID                    int64
	CustomerID            int64
	CustomerName          string
	OrderNumber           string
	Status                string
	Priority              string
	FitterID              *int64
	FactoryID             *int64
	SaddleID              *int64
	SeatSizeIDs           []int64
	SpecialInstructions   string
	CancellationReason    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TotalAmount           float64
	DepositPaid           float64
	BalanceOwing          float64
	IsUrgent              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// OrderSearchResult is the search result envelope.
type OrderSearchResult struct {
	Items   []OrderResponse
	Total   int64
	Page    int
	Limit   int
	HasNext bool
	HasPrev bool
}
