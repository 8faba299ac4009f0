package commands

import (
	"errors"
	"time"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryDateCommandIsNotConstructed = errors.New(
		"UpdateDeliveryDateCommand must be created via NewUpdateDeliveryDateCommand constructor",
	)
)

// UpdateDeliveryDateCommand represents a request to set a new estimated
// delivery date on an order. The future-only rule is enforced by the
// aggregate at apply time, not here, so the check uses the clock of the
// actual mutation.
type UpdateDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	date    time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryDateCommand creates a command to update an order's
// estimated delivery date. The date must be set.
func NewUpdateDeliveryDateCommand(orderID int64, date time.Time) (UpdateDeliveryDateCommand, error) {
	cmd := UpdateDeliveryDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateDeliveryDateCommand{}, err
	}

	if date.IsZero() {
		return UpdateDeliveryDateCommand{}, errs.NewValueIsRequiredError("estimatedDeliveryDate")
	}
	cmd.date = date

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryDateCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c UpdateDeliveryDateCommand) OrderID() int64 { return c.orderID }

// Date returns the new estimated delivery date.
func (c UpdateDeliveryDateCommand) Date() time.Time { return c.date }

func (c *UpdateDeliveryDateCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}
