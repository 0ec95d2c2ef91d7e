package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates the command, aggregating every name and
// email rule violation into a single Validation error joined by "; ".
func NewCreateCustomerCommand(name, email string) (CreateCustomerCommand, error) {
	if violations := customer.ValidateAttributes(name, email); len(violations) > 0 {
		return CreateCustomerCommand{}, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return CreateCustomerCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}
