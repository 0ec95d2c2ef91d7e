package commands

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to replace a customer's
// name and email.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	name       string
	email      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates the command. Attribute rules are
// enforced here, before any lookup, so malformed input reports Validation
// even when the customer also does not exist.
func NewUpdateCustomerCommand(customerID int64, name, email string) (UpdateCustomerCommand, error) {
	if customerID <= 0 {
		return UpdateCustomerCommand{}, errs.NewWithCause(errs.Validation, "customerId is invalid",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	if violations := customer.ValidateAttributes(name, email); len(violations) > 0 {
		return UpdateCustomerCommand{}, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer to update.
func (c UpdateCustomerCommand) CustomerID() int64 {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}
