package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a status transition on an existing
// order, optionally guarded by the concurrency token the caller last saw.
//
// The target status is carried as the caller's literal string and
// deliberately not validated here: the handler checks order existence,
// token freshness, and the state machine in that exact sequence, so an
// illegal target on a missing order still reports NotFound.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	target          string
	expectedVersion *uint64

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status-update command. target is
// the requested status name as the caller sent it. expectedVersion is the
// decoded concurrency token, nil when the caller did not supply one
// (unconditional update).
func NewUpdateOrderStatusCommand(orderID int64, target string, expectedVersion *uint64) (UpdateOrderStatusCommand, error) {
	if orderID <= 0 {
		return UpdateOrderStatusCommand{}, errs.NewWithCause(errs.Validation, "orderId is invalid",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return UpdateOrderStatusCommand{
		orderID:         orderID,
		target:          target,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identity of the order to update.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Target returns the requested target status name as supplied by the caller.
func (c UpdateOrderStatusCommand) Target() string {
	return c.target
}

// ExpectedVersion returns the decoded concurrency token, nil when absent.
func (c UpdateOrderStatusCommand) ExpectedVersion() *uint64 {
	return c.expectedVersion
}
