package commands

import (
	"errors"

	"saddleoms/internal/core/domain/model/order"
	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The target status is parsed here, at the boundary;
// the legality of the transition itself is decided by the aggregate.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "in_production")
//	if err != nil {
//	    return err // unknown status literal
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // e.g. invalid transition
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The status string must name one of the known statuses (case-insensitive).
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	parsed, err := order.NewStatus(status)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	cmd.status = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c ChangeOrderStatusCommand) OrderID() int64 { return c.orderID }

// Status returns the parsed target status.
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}
