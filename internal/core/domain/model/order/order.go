package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"saddleoms/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// depositPolicyRate is the share of the total amount that must be paid
// before production readiness is assumed.
const depositPolicyRate = 0.3

// Order represents a saddle manufacturing order. It is the aggregate root
// managing the order lifecycle from creation through production to
// delivery, and the financial state of the order.
//
// Order maintains these invariants at construction and after every
// mutating call:
//   - customerID is present (greater than 0)
//   - orderNumber is non-empty
//   - totalAmount is greater than 0
//   - depositPaid is non-negative and never exceeds totalAmount
//   - balanceOwing equals totalAmount minus depositPaid
//   - status changes follow the Status transition table
//
// The struct uses private fields to enforce encapsulation; persistence
// reconstructs instances through RestoreOrder with all fields explicit.
// None of the mutating operations persist anything: persistence is a
// separate collaborator.
type Order struct {
	// id is assigned by storage on creation; 0 until then.
	id int64

	customerID int64

	// customerName is carried denormalized for search; may be empty.
	customerName string

	// orderNumber is the unique business identifier, e.g. "ORD-3f2a9c1d".
	orderNumber string

	status   Status
	priority Priority

	// fitterID and factoryID are nil until assigned.
	fitterID  *int64
	factoryID *int64

	// saddleID references the saddle model being built, when known.
	saddleID *int64

	// seatSizeIDs lists the seat sizes covered by the order.
	seatSizeIDs []int64

	// saddleSpecifications is an opaque key-value map of build options.
	saddleSpecifications map[string]any

	specialInstructions string
	cancellationReason  string

	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	totalAmount  float64
	depositPaid  float64
	balanceOwing float64

	// measurements holds the customer's fitting measurements, when taken.
	measurements map[string]float64

	// isUrgent is derived from the priority on every priority change.
	isUrgent bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validated inputs. This is the only way
// to create an order for a new business transaction; persistence uses
// RestoreOrder instead.
//
// The order starts in pending status with normal priority, zero deposit
// and the full total amount owing. saddleID may be nil and seatSizeIDs,
// saddleSpecifications, specialInstructions and estimatedDeliveryDate may
// be empty; when estimatedDeliveryDate is given it must lie in the future.
func NewOrder(
	customerID int64,
	customerName string,
	orderNumber string,
	saddleID *int64,
	seatSizeIDs []int64,
	saddleSpecifications map[string]any,
	specialInstructions string,
	estimatedDeliveryDate *time.Time,
	totalAmount float64,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:              StatusPending,
		priority:            PriorityNormal,
		customerName:        strings.TrimSpace(customerName),
		specialInstructions: strings.TrimSpace(specialInstructions),
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setOrderNumber(orderNumber),
		o.setSaddleID(saddleID),
		o.setSeatSizeIDs(seatSizeIDs),
		o.setTotalAmount(totalAmount),
		o.setInitialEstimatedDeliveryDate(estimatedDeliveryDate),
	); err != nil {
		return nil, err
	}

	o.saddleSpecifications = copySpecifications(saddleSpecifications)
	o.balanceOwing = o.totalAmount

	return o, nil
}

// RestoreOrderParams carries every persisted field needed to rebuild an
// Order. All fields are explicit so the persistence mapper never has to
// reach into private state.
type RestoreOrderParams struct {
	ID                    int64
	CustomerID            int64
	CustomerName          string
	OrderNumber           string
	Status                Status
	Priority              Priority
	FitterID              *int64
	FactoryID             *int64
	SaddleID              *int64
	SeatSizeIDs           []int64
	SaddleSpecifications  map[string]any
	SpecialInstructions   string
	CancellationReason    string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TotalAmount           float64
	DepositPaid           float64
	Measurements          map[string]float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestoreOrder rebuilds an Order from persisted state. It re-validates the
// construction invariants but accepts any valid status and priority, and
// recomputes the derived fields (balanceOwing, isUrgent) from the stored
// values so they can never drift from their definitions.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		customerName:        strings.TrimSpace(params.CustomerName),
		specialInstructions: params.SpecialInstructions,
		cancellationReason:  params.CancellationReason,
		createdAt:           params.CreatedAt,
		updatedAt:           params.UpdatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(params.CustomerID),
		o.setOrderNumber(params.OrderNumber),
		o.setSaddleID(params.SaddleID),
		o.setSeatSizeIDs(params.SeatSizeIDs),
		o.setTotalAmount(params.TotalAmount),
		params.Status.Validate(),
		params.Priority.Validate(),
	); err != nil {
		return nil, err
	}

	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", params.ID))
	}
	if params.DepositPaid < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("depositPaid",
			fmt.Errorf("%.2f is negative", params.DepositPaid))
	}
	if params.DepositPaid > params.TotalAmount {
		return nil, errs.NewValueIsOutOfRangeError("depositPaid", params.DepositPaid, 0, params.TotalAmount)
	}

	o.id = params.ID
	o.status = params.Status
	o.priority = params.Priority
	o.fitterID = params.FitterID
	o.factoryID = params.FactoryID
	o.saddleSpecifications = copySpecifications(params.SaddleSpecifications)
	o.estimatedDeliveryDate = params.EstimatedDeliveryDate
	o.actualDeliveryDate = params.ActualDeliveryDate
	o.depositPaid = params.DepositPaid
	o.balanceOwing = params.TotalAmount - params.DepositPaid
	o.measurements = copyMeasurements(params.Measurements)
	o.isUrgent = params.Priority.IsUrgent()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity. Orders without a storage id
// (id 0) are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// SetID assigns the storage-generated identifier after insertion.
// Fails if the order already has an id or the id is not positive.
func (o *Order) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("id is already assigned: %d", o.id))
	}
	o.id = id
	return nil
}

// ID returns the storage identifier, 0 before first persistence.
func (o *Order) ID() int64 { return o.id }

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 { return o.customerID }

// CustomerName returns the denormalized customer display name; may be empty.
func (o *Order) CustomerName() string { return o.customerName }

// OrderNumber returns the unique business order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Priority returns the current production priority.
func (o *Order) Priority() Priority { return o.priority }

// FitterID returns the assigned fitter, nil when unassigned.
func (o *Order) FitterID() *int64 { return o.fitterID }

// FactoryID returns the assigned factory, nil when unassigned.
func (o *Order) FactoryID() *int64 { return o.factoryID }

// SaddleID returns the referenced saddle model, nil when unknown.
func (o *Order) SaddleID() *int64 { return o.saddleID }

// SeatSizeIDs returns a copy of the seat sizes covered by the order.
func (o *Order) SeatSizeIDs() []int64 {
	if o.seatSizeIDs == nil {
		return nil
	}
	out := make([]int64, len(o.seatSizeIDs))
	copy(out, o.seatSizeIDs)
	return out
}

// SaddleSpecifications returns a copy of the opaque specification map.
func (o *Order) SaddleSpecifications() map[string]any {
	return copySpecifications(o.saddleSpecifications)
}

// SpecialInstructions returns the free-text instructions; may be empty.
func (o *Order) SpecialInstructions() string { return o.specialInstructions }

// CancellationReason returns the reason recorded by Cancel; empty until then.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// EstimatedDeliveryDate returns the promised delivery date, nil when unset.
func (o *Order) EstimatedDeliveryDate() *time.Time { return o.estimatedDeliveryDate }

// ActualDeliveryDate returns the recorded delivery date, nil until delivered.
func (o *Order) ActualDeliveryDate() *time.Time { return o.actualDeliveryDate }

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// DepositPaid returns the cumulative deposit paid so far.
func (o *Order) DepositPaid() float64 { return o.depositPaid }

// BalanceOwing returns totalAmount minus depositPaid.
func (o *Order) BalanceOwing() float64 { return o.balanceOwing }

// Measurements returns a copy of the fitting measurements, nil when none
// were taken.
func (o *Order) Measurements() map[string]float64 {
	return copyMeasurements(o.measurements)
}

// IsUrgent reports whether the order carries an urgent or critical priority.
func (o *Order) IsUrgent() bool { return o.isUrgent }

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AssignFitter assigns the fitter responsible for taking measurements.
//
// Fails if the order is in a final status or fitterID is not positive.
func (o *Order) AssignFitter(fitterID int64) error {
	if err := o.ensureNotFinal(); err != nil {
		return err
	}
	if fitterID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fitterId", fmt.Errorf("%d is not greater than 0", fitterID))
	}

	o.fitterID = &fitterID
	o.touch()
	return nil
}

// AssignFactory assigns the factory that will manufacture the saddle.
//
// Fails if the order is in a final status or factoryID is not positive.
func (o *Order) AssignFactory(factoryID int64) error {
	if err := o.ensureNotFinal(); err != nil {
		return err
	}
	if factoryID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("factoryId", fmt.Errorf("%d is not greater than 0", factoryID))
	}

	o.factoryID = &factoryID
	o.touch()
	return nil
}

// ChangeStatus moves the order to newStatus.
//
// The transition table alone gates legality; there is no separate final
// check here, since final statuses simply have no outgoing transitions.
// Transitioning to delivered records the actual delivery date if it is
// not already set.
//
// Fails with an InvalidTransitionError when the transition table does not
// allow the move.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(newStatus) {
		return errs.NewInvalidTransitionError(o.status.String(), newStatus.String())
	}

	o.status = newStatus
	if newStatus == StatusDelivered && o.actualDeliveryDate == nil {
		now := time.Now().UTC()
		o.actualDeliveryDate = &now
	}
	o.touch()
	return nil
}

// UpdatePriority changes the production priority and recomputes the
// urgency flag.
//
// Fails with an InvalidTransitionError when the order is in a final status.
func (o *Order) UpdatePriority(newPriority Priority) error {
	if err := newPriority.Validate(); err != nil {
		return err
	}
	if o.status.IsFinal() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.priority.String(),
			newPriority.String(),
			fmt.Errorf("order status %s is final", o.status),
		)
	}

	o.priority = newPriority
	o.isUrgent = newPriority.IsUrgent()
	o.touch()
	return nil
}

// RecordDepositPayment adds amount to the deposit paid and recomputes the
// balance owing.
//
// Fails if amount is not positive, or if the payment would push the
// cumulative deposit above the total amount.
func (o *Order) RecordDepositPayment(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%.2f is not greater than 0", amount))
	}
	if o.depositPaid+amount > o.totalAmount {
		return errs.NewValueIsOutOfRangeError("depositPaid", o.depositPaid+amount, 0, o.totalAmount)
	}

	o.depositPaid += amount
	o.balanceOwing = o.totalAmount - o.depositPaid
	o.touch()
	return nil
}

// UpdateMeasurements replaces the fitting measurements with a defensive
// copy of the given map.
//
// Fails if the order is in a final status.
func (o *Order) UpdateMeasurements(measurements map[string]float64) error {
	if err := o.ensureNotFinal(); err != nil {
		return err
	}

	o.measurements = copyMeasurements(measurements)
	o.touch()
	return nil
}

// UpdateEstimatedDeliveryDate sets a new promised delivery date.
//
// Fails if the order is in a final status or the date is not strictly in
// the future at call time.
func (o *Order) UpdateEstimatedDeliveryDate(date time.Time) error {
	if err := o.ensureNotFinal(); err != nil {
		return err
	}
	if !date.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryDate",
			fmt.Errorf("%s is not in the future", date.Format(time.RFC3339)))
	}

	d := date
	o.estimatedDeliveryDate = &d
	o.touch()
	return nil
}

// Cancel moves the order to cancelled, recording the reason.
//
// Cancellation bypasses the normal transition table and is independently
// gated by Status.CanBeCancelled: final orders and shipped orders cannot
// be cancelled. The reason must not be blank.
func (o *Order) Cancel(reason string) error {
	if !o.status.CanBeCancelled() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(),
			StatusCancelled.String(),
			fmt.Errorf("order in status %s cannot be cancelled", o.status),
		)
	}

	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	o.status = StatusCancelled
	o.cancellationReason = trimmed
	o.touch()
	return nil
}

// IsOverdue reports whether a non-final order has passed its estimated
// delivery date.
func (o *Order) IsOverdue() bool {
	if o.estimatedDeliveryDate == nil || o.status.IsFinal() {
		return false
	}
	return time.Now().After(*o.estimatedDeliveryDate)
}

// DaysUntilDelivery returns the number of days remaining until the
// estimated delivery date, rounded up. Returns nil when no date is set or
// the order is in a final status. A past date yields a negative count.
func (o *Order) DaysUntilDelivery() *int {
	if o.estimatedDeliveryDate == nil || o.status.IsFinal() {
		return nil
	}
	days := int(math.Ceil(time.Until(*o.estimatedDeliveryDate).Hours() / 24))
	return &days
}

// RequiresDeposit reports whether the paid deposit is still below the 30%
// deposit policy threshold.
func (o *Order) RequiresDeposit() bool {
	return o.depositPaid < depositPolicyRate*o.totalAmount
}

// PaymentPercentage returns the paid share of the total amount in percent,
// 0 when the total amount is 0.
func (o *Order) PaymentPercentage() float64 {
	if o.totalAmount == 0 {
		return 0
	}
	return o.depositPaid / o.totalAmount * 100
}

func (o *Order) ensureNotFinal() error {
	if o.status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order in final status %s cannot be modified", o.status))
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	trimmed := strings.TrimSpace(orderNumber)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = trimmed
	return nil
}

func (o *Order) setSaddleID(saddleID *int64) error {
	if saddleID != nil && *saddleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("saddleId",
			fmt.Errorf("%d is not greater than 0", *saddleID))
	}
	o.saddleID = saddleID
	return nil
}

func (o *Order) setSeatSizeIDs(seatSizeIDs []int64) error {
	for _, id := range seatSizeIDs {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("seatSizeIds",
				fmt.Errorf("%d is not greater than 0", id))
		}
	}
	if seatSizeIDs != nil {
		o.seatSizeIDs = make([]int64, len(seatSizeIDs))
		copy(o.seatSizeIDs, seatSizeIDs)
	}
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%.2f is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setInitialEstimatedDeliveryDate(date *time.Time) error {
	if date == nil {
		return nil
	}
	if !date.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryDate",
			fmt.Errorf("%s is not in the future", date.Format(time.RFC3339)))
	}
	d := *date
	o.estimatedDeliveryDate = &d
	return nil
}

func copySpecifications(specs map[string]any) map[string]any {
	if specs == nil {
		return nil
	}
	out := make(map[string]any, len(specs))
	for k, v := range specs {
		out[k] = v
	}
	return out
}

func copyMeasurements(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
