package commands

import (
	"context"
)

// RecordDepositPaymentCommandHandler records a customer payment against an
// order. The order row is read with a row-level write lock so that two
// concurrent payments serialize instead of both reading a stale deposit
// and overcommitting past the total amount.
type RecordDepositPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordDepositPaymentCommandHandler creates a handler for deposit payments.
func NewRecordDepositPaymentCommandHandler(uowFactory OrderUoWFactory) RecordDepositPaymentCommandHandler {
	return RecordDepositPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit payment command.
func (h *RecordDepositPaymentCommandHandler) Handle(ctx context.Context, cmd RecordDepositPaymentCommand) error {
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
	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordDepositPayment(cmd.Amount()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
