package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

var (
	// ErrInvalidStatusTransition is wrapped by InvalidTransitionError.
	ErrInvalidStatusTransition = errors.New("status transition is not allowed")

	// ErrDeletionNotAllowed is returned when deleting an order that has not reached
	// the terminal status.
	ErrDeletionNotAllowed = errors.New("only processed orders can be deleted")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	StatusNewOrder ──> StatusPaymentDone ──> StatusOrderProcessed
//
// Persisted and transmitted as its display string ("New Order", ...).
type Status int

const (
	// StatusUnknown is the zero value and never valid.
	StatusUnknown Status = iota

	// StatusNewOrder is assigned at checkout; payment has not been confirmed yet.
	StatusNewOrder

	// StatusPaymentDone means an administrator confirmed the UPI payment.
	StatusPaymentDone

	// StatusOrderProcessed means the order was fulfilled. Terminal.
	StatusOrderProcessed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusNewOrder:       "New Order",
		StatusPaymentDone:    "Payment Done",
		StatusOrderProcessed: "Order Processed",
	}
}

func getNextStatus() map[Status]Status {
	//nolint:exhaustive // StatusOrderProcessed and StatusUnknown have no successor
	return map[Status]Status{
		StatusNewOrder:    StatusPaymentDone,
		StatusPaymentDone: StatusOrderProcessed,
	}
}

// InvalidTransitionError reports a requested status change the lifecycle forbids.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// ParseStatus maps a wire string to a Status. Only the three lifecycle strings
// are accepted; matching is exact.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of New Order, Payment Done, Order Processed", s),
	)
}

func (s Status) Validate() error {
	if s != StatusNewOrder && s != StatusPaymentDone && s != StatusOrderProcessed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == StatusOrderProcessed
}

// Next returns the single status reachable from s. ok is false for the terminal
// status and for invalid values.
func (s Status) Next() (next Status, ok bool) {
	next, ok = getNextStatus()[s]
	return next, ok
}

// TransitionTo validates a move from s to target.
//
// Allowed:
//   - the immediate successor (StatusNewOrder -> StatusPaymentDone, StatusPaymentDone -> StatusOrderProcessed)
//   - target == s, an idempotent no-op
//
// Everything else, including skipping a step and moving backwards, returns an
// InvalidTransitionError. An invalid target returns ValueIsInvalidError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}

	if target == s {
		return s, nil
	}
	if next, ok := s.Next(); ok && next == target {
		return target, nil
	}

	return StatusUnknown, &InvalidTransitionError{From: s, To: target}
}

// ValidateDeletion returns ErrDeletionNotAllowed unless s is terminal.
func (s Status) ValidateDeletion() error {
	if !s.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrDeletionNotAllowed, s)
	}
	return nil
}
