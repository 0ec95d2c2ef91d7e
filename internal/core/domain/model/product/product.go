// Package product contains the product entity. Products are referenced by
// order lines through their id; lines snapshot the product price at order
// time, so price edits and deactivation never corrupt historical orders.
package product

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

const (
	minSkuLength  = 5
	maxSkuLength  = 50
	minNameLength = 3
	maxNameLength = 200
)

var (
	skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
	maxPrice   = decimal.NewFromInt(1_000_000)
)

// Product is a sellable item identified by a unique SKU. The active flag
// gates whether new order lines may reference it; inactive products remain
// resolvable for historical data.
type Product struct {
	id       int64
	sku      string
	name     string
	price    decimal.Decimal
	isActive bool

	guard guard.ConstructorGuard
}

// NewProduct creates a product with a validated SKU, name and price.
// All rule violations are collected and joined by "; " into a single
// Validation error.
func NewProduct(sku, name string, price decimal.Decimal, isActive bool) (*Product, error) {
	if violations := ValidateAttributes(sku, name, price); len(violations) > 0 {
		return nil, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return &Product{
		sku:      sku,
		name:     name,
		price:    price,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a persisted product including its identity.
// Intended for repository use only.
func RestoreProduct(id int64, sku, name string, price decimal.Decimal, isActive bool) *Product {
	return &Product{
		id:       id,
		sku:      sku,
		name:     name,
		price:    price,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}
}

// Update replaces the product's mutable attributes, applying the same
// rules as NewProduct. Existing order lines keep their snapshotted price.
func (p *Product) Update(sku, name string, price decimal.Decimal, isActive bool) error {
	if violations := ValidateAttributes(sku, name, price); len(violations) > 0 {
		return errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	p.sku = sku
	p.name = name
	p.price = price
	p.isActive = isActive
	return nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's identity (zero until persisted).
func (p *Product) ID() int64 {
	return p.id
}

// Sku returns the product's unique stock keeping unit.
func (p *Product) Sku() string {
	return p.sku
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current list price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// IsActive reports whether new order lines may reference this product.
func (p *Product) IsActive() bool {
	return p.isActive
}

// ValidateAttributes collects every rule violation for a product's SKU,
// name and price. An empty result means the attributes are valid.
func ValidateAttributes(sku, name string, price decimal.Decimal) []string {
	var violations []string

	switch {
	case sku == "":
		violations = append(violations, "Sku is required.")
	case len(sku) < minSkuLength:
		violations = append(violations, fmt.Sprintf("Sku must be at least %d characters.", minSkuLength))
	case len(sku) > maxSkuLength:
		violations = append(violations, fmt.Sprintf("Sku must not exceed %d characters.", maxSkuLength))
	case !skuPattern.MatchString(sku):
		violations = append(violations, "SKU must contain only uppercase letters, numbers, and hyphens")
	}

	switch {
	case name == "":
		violations = append(violations, "Name is required.")
	case len(name) < minNameLength:
		violations = append(violations, fmt.Sprintf("Name must be at least %d characters.", minNameLength))
	case len(name) > maxNameLength:
		violations = append(violations, fmt.Sprintf("Name must not exceed %d characters.", maxNameLength))
	}

	if !price.GreaterThan(decimal.Zero) {
		violations = append(violations, "Price must be greater than 0.")
	} else if price.GreaterThan(maxPrice) {
		violations = append(violations, "Price must be less than or equal to 1,000,000.")
	}

	return violations
}
