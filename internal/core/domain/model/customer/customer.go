// Package customer contains the customer entity and its validation rules.
// Customers own orders referentially: deleting a customer is restricted
// while orders reference it, and orders are never cascade-deleted with it.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

const (
	minNameLength  = 2
	maxNameLength  = 100
	maxEmailLength = 255
)

// Customer represents a buyer identified by a unique email address.
type Customer struct {
	id        int64
	name      string
	email     string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a validated name and email.
// All rule violations are collected and joined by "; " into a single
// Validation error so callers see every problem at once.
func NewCustomer(name, email string, createdAt time.Time) (*Customer, error) {
	if violations := ValidateAttributes(name, email); len(violations) > 0 {
		return nil, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return &Customer{
		name:      name,
		email:     email,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a persisted customer including its identity.
// Intended for repository use only.
func RestoreCustomer(id int64, name, email string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
}

// Rename replaces the customer's name and email, applying the same rules
// as NewCustomer. Used by the update flow.
func (c *Customer) Rename(name, email string) error {
	if violations := ValidateAttributes(name, email); len(violations) > 0 {
		return errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	c.name = name
	c.email = email
	return nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identity (zero until persisted).
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's unique email address.
func (c *Customer) Email() string {
	return c.email
}

// CreatedAt returns the creation timestamp (UTC).
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// ValidateAttributes collects every rule violation for a customer's name
// and email. An empty result means the attributes are valid. Exposed so
// request-level validation can report all problems before any lookup.
func ValidateAttributes(name, email string) []string {
	var violations []string

	switch {
	case name == "":
		violations = append(violations, "Name is required.")
	case len(name) < minNameLength:
		violations = append(violations, fmt.Sprintf("Name must be at least %d characters.", minNameLength))
	case len(name) > maxNameLength:
		violations = append(violations, fmt.Sprintf("Name must not exceed %d characters.", maxNameLength))
	}

	switch {
	case email == "":
		violations = append(violations, "Email is required.")
	case !isPlausibleEmail(email):
		violations = append(violations, "Email must be a valid email address.")
	case len(email) > maxEmailLength:
		violations = append(violations, fmt.Sprintf("Email must not exceed %d characters.", maxEmailLength))
	}

	return violations
}

// isPlausibleEmail applies the same lightweight shape check the original
// validator used: one @ with non-empty local part and a dotted domain.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
