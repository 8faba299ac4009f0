// Package guard provides the ConstructorGuard pattern used by domain
// objects, commands and queries to reject zero-value instances that were
// not created through their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded
// object was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding it in
// a struct and setting it via NewConstructorGuard inside the constructor
// makes zero-value instances detectable: their guard is the zero value and
// fails Validate.
//
// Example:
//
//	type CancelOrderCommand struct {
//	    orderID int64
//	    reason  string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCancelOrderCommand(orderID int64, reason string) (CancelOrderCommand, error) {
//	    ...
//	    return CancelOrderCommand{orderID: orderID, reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
