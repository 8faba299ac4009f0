package commands

import (
	"context"
)

// AssignFactoryCommandHandler loads the order, applies the factory
// assignment through the aggregate and persists the result.
type AssignFactoryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignFactoryCommandHandler creates a handler for factory assignment operations.
func NewAssignFactoryCommandHandler(uowFactory OrderUoWFactory) AssignFactoryCommandHandler {
	return AssignFactoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the factory assignment command.
func (h *AssignFactoryCommandHandler) Handle(ctx context.Context, cmd AssignFactoryCommand) error {
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

	if err = aggregate.AssignFactory(cmd.FactoryID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
