// Package order contains the Order aggregate and its value objects.
//
// The aggregate root is Order, which composes the Status state machine and
// the Priority level with the financial fields (total amount, deposit paid,
// balance owing). Every mutating operation re-validates its preconditions
// before applying the change, so an Order obtained from NewOrder or
// RestoreOrder can never be observed in a state that violates its
// invariants.
//
// Status is a closed set of ten lifecycle states with a fixed transition
// table; Priority is a closed set of five weighted levels. Both are
// immutable value objects constructed from case-insensitive string
// literals.
package order
