package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          │
//	          └──> Cancelled
//
// Paid and Cancelled are terminal: no further transitions are allowed
// from either of them. Status is a value object that validates state
// transitions and provides string representations for persistence
// and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are awaiting payment or cancellation.
	Pending

	// Paid indicates the order has been paid for.
	// This is a final state with no further transitions allowed.
	Paid

	// Cancelled indicates the order was cancelled before payment.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts a symbolic status name into a Status value.
// The comparison is exact: "Pending", "Paid", "Cancelled".
// Returns a Validation error for any other input.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.Newf(errs.Validation, "Invalid order status %q", s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewWithCause(errs.Validation, "status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending", "Paid", or "Cancelled" for valid statuses and
// "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// TransitionTo validates the transition from the current status to target
// and returns the new status on success.
//
// Valid transitions:
//   - Pending -> Paid
//   - Pending -> Cancelled
//
// Any non-Pending source status is terminal for status-change purposes
// and yields a BusinessRule error naming the current status. A target
// other than Paid or Cancelled yields a Validation error, even from
// Pending, since no other transitions are ever legal.
func (s Status) TransitionTo(target Status) (Status, error) {
	if s != Pending {
		return Unknown, errs.Newf(errs.BusinessRule,
			"Order with status %s can only transition from Pending status", s)
	}

	if target != Paid && target != Cancelled {
		return Unknown, errs.Newf(errs.Validation,
			"Invalid target status %s. Only Paid or Cancelled allowed", target)
	}

	return target, nil
}
