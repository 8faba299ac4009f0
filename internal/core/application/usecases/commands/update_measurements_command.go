package commands

import (
	"errors"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrUpdateMeasurementsCommandIsNotConstructed = errors.New(
		"UpdateMeasurementsCommand must be created via NewUpdateMeasurementsCommand constructor",
	)
)

// UpdateMeasurementsCommand represents a request to replace the fitting
// measurements recorded for an order.
type UpdateMeasurementsCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	measurements map[string]float64

	guard guard.ConstructorGuard
}

// NewUpdateMeasurementsCommand creates a command to replace an order's measurements.
// The measurements map must be present; the command keeps its own copy.
func NewUpdateMeasurementsCommand(orderID int64, measurements map[string]float64) (UpdateMeasurementsCommand, error) {
	cmd := UpdateMeasurementsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateMeasurementsCommand{}, err
	}

	if measurements == nil {
		return UpdateMeasurementsCommand{}, errs.NewValueIsRequiredError("measurements")
	}

	cmd.measurements = make(map[string]float64, len(measurements))
	for k, v := range measurements {
		cmd.measurements[k] = v
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMeasurementsCommandIsNotConstructed)
}

// OrderID returns the target order's storage identifier.
func (c UpdateMeasurementsCommand) OrderID() int64 { return c.orderID }

// Measurements returns the replacement measurement map.
func (c UpdateMeasurementsCommand) Measurements() map[string]float64 { return c.measurements }

func (c *UpdateMeasurementsCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}
