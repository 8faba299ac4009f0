package commands

import (
	"errors"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrAssignFactoryCommandIsNotConstructed = errors.New(
		"AssignFactoryCommand must be created via NewAssignFactoryCommand constructor",
	)
)

// AssignFactoryCommand represents a request to assign the factory that
// will manufacture the saddle for an order.
type AssignFactoryCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	factoryID int64

	guard guard.ConstructorGuard
}

// NewAssignFactoryCommand creates a command to assign a factory to an order.
// Both identifiers must be positive.
func NewAssignFactoryCommand(orderID, factoryID int64) (AssignFactoryCommand, error) {
	cmd := AssignFactoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFactoryID(factoryID),
	); err != nil {
		return AssignFactoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignFactoryCommand) Validate() error {
	return c.guard.Validate(ErrAssignFactoryCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c AssignFactoryCommand) OrderID() int64 { return c.orderID }

// FactoryID returns the factory to assign.
func (c AssignFactoryCommand) FactoryID() int64 { return c.factoryID }

func (c *AssignFactoryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignFactoryCommand) setFactoryID(factoryID int64) error {
	if factoryID <= 0 {
		return errs.NewValueIsInvalidError("factoryId")
	}
	c.factoryID = factoryID
	return nil
}
