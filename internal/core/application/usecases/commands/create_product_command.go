package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a new product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	sku      string
	name     string
	price    decimal.Decimal
	isActive bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates the command, aggregating every SKU, name
// and price rule violation into a single Validation error joined by "; ".
func NewCreateProductCommand(sku, name string, price decimal.Decimal, isActive bool) (CreateProductCommand, error) {
	if violations := product.ValidateAttributes(sku, name, price); len(violations) > 0 {
		return CreateProductCommand{}, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return CreateProductCommand{
		sku:      sku,
		name:     name,
		price:    price,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Sku returns the product's stock keeping unit.
func (c CreateProductCommand) Sku() string {
	return c.sku
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's list price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// IsActive returns whether the product is orderable on creation.
func (c CreateProductCommand) IsActive() bool {
	return c.isActive
}
