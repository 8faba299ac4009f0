package queries

import (
	"context"
	"time"

	"saddleoms/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves overdue orders from the database.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle returns every live order that is past its estimated delivery
// date and not yet in a final status. Results are sorted by how long the
// order has been overdue, oldest first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]OverdueOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]OverdueOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			status,
			priority,
			estimated_delivery_date
		FROM orders
		WHERE deleted_at IS NULL
		  AND status NOT IN (?, ?, ?)
		  AND estimated_delivery_date IS NOT NULL
		  AND estimated_delivery_date < ?
		ORDER BY estimated_delivery_date
	`, order.StatusDelivered, order.StatusCancelled, order.StatusReturned, time.Now().UTC()).Rows()
	if err != nil {
		return nil, searchFailure(err)
	}
	defer rows.Close()

	for rows.Next() {
		var resp OverdueOrderResponse
		err = rows.Scan(
			&resp.ID,
			&resp.OrderNumber,
			&resp.CustomerName,
			&resp.Status,
			&resp.Priority,
			&resp.EstimatedDeliveryDate,
		)
		if err != nil {
			return nil, searchFailure(err)
		}
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, searchFailure(err)
	}

	return overdue, nil
}
