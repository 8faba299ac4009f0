package ports

import (
	"context"

	"saddleoms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its storage id.
	// The order must be valid and not already persisted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its storage identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and takes a row-level write lock on
	// it for the duration of the surrounding transaction. Used by
	// handlers that must serialize concurrent mutations of the same
	// order, such as deposit payments.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetByOrderNumber retrieves an order by its unique business number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)
}
