// Package ports defines repository and unit-of-work interfaces for the
// orders domain. These interfaces establish contracts between the
// application core and infrastructure, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer and returns it with its generated identity.
	Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update persists changes to an existing customer.
	// Returns a NotFound error when the customer does not exist.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer. Returns a NotFound error when absent.
	// The store restricts deletion while orders reference the customer.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a customer by identity.
	// Returns a NotFound error when absent.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// ExistsByID reports whether a customer with the given identity exists.
	// Used by the order workflow's customer existence check.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// EmailTaken reports whether another customer already uses the email.
	// excludeID ignores one customer, so updates do not conflict with
	// the customer being updated; pass zero for creates.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}
