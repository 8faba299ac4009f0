package commands

import (
	"context"
)

// UpdateDeliveryDateCommandHandler loads the order, applies the new
// estimated delivery date through the aggregate and persists the result.
type UpdateDeliveryDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryDateCommandHandler creates a handler for delivery date updates.
func NewUpdateDeliveryDateCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryDateCommandHandler {
	return UpdateDeliveryDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery date update. The aggregate rejects dates
// that are not in the future and orders in a final status.
func (h *UpdateDeliveryDateCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryDateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateEstimatedDeliveryDate(cmd.Date()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
