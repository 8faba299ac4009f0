package commands

import (
	"errors"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrAssignFitterCommandIsNotConstructed = errors.New(
		"AssignFitterCommand must be created via NewAssignFitterCommand constructor",
	)
)

// AssignFitterCommand represents a request to assign the fitter who will
// take the customer's measurements for an order.
type AssignFitterCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	fitterID int64

	guard guard.ConstructorGuard
}

// NewAssignFitterCommand creates a command to assign a fitter to an order.
// Both identifiers must be positive.
func NewAssignFitterCommand(orderID, fitterID int64) (AssignFitterCommand, error) {
	cmd := AssignFitterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFitterID(fitterID),
	); err != nil {
		return AssignFitterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignFitterCommand) Validate() error {
	return c.guard.Validate(ErrAssignFitterCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c AssignFitterCommand) OrderID() int64 { return c.orderID }

// FitterID returns the fitter to assign.
func (c AssignFitterCommand) FitterID() int64 { return c.fitterID }

func (c *AssignFitterCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignFitterCommand) setFitterID(fitterID int64) error {
	if fitterID <= 0 {
		return errs.NewValueIsInvalidError("fitterId")
	}
	c.fitterID = fitterID
	return nil
}
