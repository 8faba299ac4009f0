package commands

import (
	"errors"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrRecordDepositPaymentCommandIsNotConstructed = errors.New(
		"RecordDepositPaymentCommand must be created via NewRecordDepositPaymentCommand constructor",
	)
)

// RecordDepositPaymentCommand represents a customer payment against an
// order's total amount.
type RecordDepositPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	amount  float64

	guard guard.ConstructorGuard
}

// NewRecordDepositPaymentCommand creates a command to record a deposit payment.
// The amount must be positive; whether it fits under the order total is
// decided by the aggregate against the current deposit.
func NewRecordDepositPaymentCommand(orderID int64, amount float64) (RecordDepositPaymentCommand, error) {
	cmd := RecordDepositPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return RecordDepositPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDepositPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordDepositPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c RecordDepositPaymentCommand) OrderID() int64 { return c.orderID }

// Amount returns the payment amount.
func (c RecordDepositPaymentCommand) Amount() float64 { return c.amount }

func (c *RecordDepositPaymentCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *RecordDepositPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
