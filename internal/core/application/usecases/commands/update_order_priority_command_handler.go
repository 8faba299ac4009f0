package commands

import (
	"context"
)

// UpdateOrderPriorityCommandHandler applies a priority change to an order
// and lets the aggregate re-derive the urgency flag.
type UpdateOrderPriorityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderPriorityCommandHandler creates a handler for priority changes.
func NewUpdateOrderPriorityCommandHandler(uowFactory OrderUoWFactory) UpdateOrderPriorityCommandHandler {
	return UpdateOrderPriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the priority change command.
func (h *UpdateOrderPriorityCommandHandler) Handle(ctx context.Context, cmd UpdateOrderPriorityCommand) error {
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

	if err = aggregate.UpdatePriority(cmd.Priority()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
