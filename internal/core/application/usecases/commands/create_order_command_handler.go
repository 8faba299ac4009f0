package commands

import (
	"context"
	"fmt"
	"strings"

	"saddleoms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in pending status with normal priority and the full
// total amount owing.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the storage id
// assigned to the new order. When the command carries no order number a
// unique one is generated. Uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orderNumber := strings.TrimSpace(cmd.OrderNumber())
	if orderNumber == "" {
		orderNumber = generateOrderNumber()
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.CustomerName(),
		orderNumber,
		cmd.SaddleID(),
		cmd.SeatSizeIDs(),
		cmd.SaddleSpecifications(),
		cmd.SpecialInstructions(),
		cmd.EstimatedDeliveryDate(),
		cmd.TotalAmount(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

// generateOrderNumber derives a unique business order number from a random
// UUID fragment, e.g. "ORD-9F2A4C1D".
func generateOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%s", strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8]))
}
