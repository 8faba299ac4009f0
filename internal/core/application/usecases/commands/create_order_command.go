package commands

import (
	"errors"
	"time"

	"saddleoms/internal/pkg/errs"
	"saddleoms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new saddle order.
// The order number is optional: when empty, the handler generates one.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "Anna Keller", "",
//	    nil, nil, map[string]any{"leather": "black"}, "", nil, 4800)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID            int64
	customerName          string
	orderNumber           string
	saddleID              *int64
	seatSizeIDs           []int64
	saddleSpecifications  map[string]any
	specialInstructions   string
	estimatedDeliveryDate *time.Time
	totalAmount           float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new saddle order.
// Validates that the customer id and total amount are positive; the
// remaining construction rules are enforced by the Order aggregate.
func NewCreateOrderCommand(
	customerID int64,
	customerName string,
	orderNumber string,
	saddleID *int64,
	seatSizeIDs []int64,
	saddleSpecifications map[string]any,
	specialInstructions string,
	estimatedDeliveryDate *time.Time,
	totalAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName:          customerName,
		orderNumber:           orderNumber,
		saddleID:              saddleID,
		seatSizeIDs:           seatSizeIDs,
		saddleSpecifications:  saddleSpecifications,
		specialInstructions:   specialInstructions,
		estimatedDeliveryDate: estimatedDeliveryDate,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() int64 { return c.customerID }

// CustomerName returns the denormalized customer display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// OrderNumber returns the requested order number; empty means generate one.
func (c CreateOrderCommand) OrderNumber() string { return c.orderNumber }

// SaddleID returns the referenced saddle model, nil when unknown.
func (c CreateOrderCommand) SaddleID() *int64 { return c.saddleID }

// SeatSizeIDs returns the seat sizes covered by the order.
func (c CreateOrderCommand) SeatSizeIDs() []int64 { return c.seatSizeIDs }

// SaddleSpecifications returns the opaque build option map.
func (c CreateOrderCommand) SaddleSpecifications() map[string]any { return c.saddleSpecifications }

// SpecialInstructions returns the free-text instructions.
func (c CreateOrderCommand) SpecialInstructions() string { return c.specialInstructions }

// EstimatedDeliveryDate returns the promised delivery date, nil when unset.
func (c CreateOrderCommand) EstimatedDeliveryDate() *time.Time { return c.estimatedDeliveryDate }

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() float64 { return c.totalAmount }

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	c.totalAmount = totalAmount
	return nil
}
