package commands

import (
	"context"
)

// AssignFitterCommandHandler loads the order, applies the fitter
// assignment through the aggregate and persists the result.
type AssignFitterCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignFitterCommandHandler creates a handler for fitter assignment operations.
func NewAssignFitterCommandHandler(uowFactory OrderUoWFactory) AssignFitterCommandHandler {
	return AssignFitterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fitter assignment command. The aggregate enforces
// that final orders reject the assignment.
func (h *AssignFitterCommandHandler) Handle(ctx context.Context, cmd AssignFitterCommand) error {
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

	if err = aggregate.AssignFitter(cmd.FitterID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
