package commands

import (
	"errors"

	"saddleoms/internal/core/domain/model/order"
	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrUpdateOrderPriorityCommandIsNotConstructed = errors.New(
		"UpdateOrderPriorityCommand must be created via NewUpdateOrderPriorityCommand constructor",
	)
)

// UpdateOrderPriorityCommand represents a request to change an order's
// production priority.
type UpdateOrderPriorityCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	priority order.Priority

	guard guard.ConstructorGuard
}

// NewUpdateOrderPriorityCommand creates a command to change an order's priority.
// The priority string must name one of the known levels (case-insensitive).
func NewUpdateOrderPriorityCommand(orderID int64, priority string) (UpdateOrderPriorityCommand, error) {
	cmd := UpdateOrderPriorityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderPriorityCommand{}, err
	}

	parsed, err := order.NewPriority(priority)
	if err != nil {
		return UpdateOrderPriorityCommand{}, err
	}
	cmd.priority = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderPriorityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPriorityCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c UpdateOrderPriorityCommand) OrderID() int64 { return c.orderID }

// Priority returns the parsed target priority.
func (c UpdateOrderPriorityCommand) Priority() order.Priority { return c.priority }

func (c *UpdateOrderPriorityCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}
