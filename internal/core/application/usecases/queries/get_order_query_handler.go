package queries

import (
	"context"
	"errors"

	"saddleoms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the projection of one order, or ObjectNotFoundError when
// no live row has the requested id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("deleted_at IS NULL").
		Where("id = ?", query.OrderID()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderResponse{}, searchFailure(err)
	}

	resp, err := row.toResponse()
	if err != nil {
		return OrderResponse{}, searchFailure(err)
	}

	return resp, nil
}
