package queries

import (
	"errors"
	"strings"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrOrderSuggestionsQueryIsNotConstructed = errors.New(
		"OrderSuggestionsQuery must be created via NewOrderSuggestionsQuery constructor",
	)
)

// Suggestible fields. Only these two columns ever reach the SQL text.
const (
	SuggestionFieldCustomerName = "customer_name"
	SuggestionFieldOrderNumber  = "order_number"
)

const suggestionMinQueryLen = 2

// OrderSuggestionsQuery retrieves typeahead suggestions for a single
// order field from a partial query string.
type OrderSuggestionsQuery struct {
	field string
	query string

	guard guard.ConstructorGuard
}

// NewOrderSuggestionsQuery creates a suggestions query. The field must be
// customer_name or order_number. Query strings shorter than 2 characters
// are accepted but yield an empty result without touching storage.
func NewOrderSuggestionsQuery(field, query string) (OrderSuggestionsQuery, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if field != SuggestionFieldCustomerName && field != SuggestionFieldOrderNumber {
		return OrderSuggestionsQuery{}, errs.NewValueIsInvalidError("field")
	}

	return OrderSuggestionsQuery{
		field: field,
		query: strings.TrimSpace(query),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderSuggestionsQuery) Validate() error {
	return q.guard.Validate(ErrOrderSuggestionsQueryIsNotConstructed)
}

// Field returns the validated suggestion column.
func (q OrderSuggestionsQuery) Field() string { return q.field }

// Query returns the trimmed partial query string.
func (q OrderSuggestionsQuery) Query() string { return q.query }
