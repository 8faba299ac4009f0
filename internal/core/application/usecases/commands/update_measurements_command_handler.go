package commands

import (
	"context"
)

// UpdateMeasurementsCommandHandler replaces an order's fitting measurements.
type UpdateMeasurementsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateMeasurementsCommandHandler creates a handler for measurement updates.
func NewUpdateMeasurementsCommandHandler(uowFactory OrderUoWFactory) UpdateMeasurementsCommandHandler {
	return UpdateMeasurementsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the measurements update command.
func (h *UpdateMeasurementsCommandHandler) Handle(ctx context.Context, cmd UpdateMeasurementsCommand) error {
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

	if err = aggregate.UpdateMeasurements(cmd.Measurements()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
