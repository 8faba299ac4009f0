package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const suggestionLimit = 10

// OrderSuggestionsQueryHandler serves typeahead suggestions from the
// order store.
type OrderSuggestionsQueryHandler struct {
	db *gorm.DB
}

// NewOrderSuggestionsQueryHandler creates a handler for suggestion queries.
func NewOrderSuggestionsQueryHandler(db *gorm.DB) OrderSuggestionsQueryHandler {
	return OrderSuggestionsQueryHandler{db: db}
}

// Handle returns up to 10 distinct values of the selected field matching
// the partial query, ascending. Queries shorter than 2 characters return
// an empty list without a round trip; the minimum avoids full scans on
// tiny prefixes.
func (h OrderSuggestionsQueryHandler) Handle(
	ctx context.Context,
	query OrderSuggestionsQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if len(query.Query()) < suggestionMinQueryLen {
		return []string{}, nil
	}

	suggestions := make([]string, 0, suggestionLimit)

	// query.Field() is constrained to two known columns by the constructor.
	sql := fmt.Sprintf(`
		SELECT DISTINCT %[1]s
		FROM orders
		WHERE deleted_at IS NULL
		  AND %[1]s ILIKE ?
		ORDER BY %[1]s ASC
		LIMIT %[2]d
	`, query.Field(), suggestionLimit)

	rows, err := h.db.WithContext(ctx).Raw(sql, "%"+query.Query()+"%").Rows()
	if err != nil {
		return nil, searchFailure(err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return nil, searchFailure(err)
		}
		suggestions = append(suggestions, value)
	}

	if err = rows.Err(); err != nil {
		return nil, searchFailure(err)
	}

	return suggestions, nil
}
