package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to replace a product's
// attributes. Attribute rules are checked before the product is looked up,
// so a malformed payload for an unknown id reports Validation, not NotFound.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	sku       string
	name      string
	price     decimal.Decimal
	isActive  bool

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID int64, sku, name string, price decimal.Decimal, isActive bool,
) (UpdateProductCommand, error) {
	var violations []string
	if productID <= 0 {
		violations = append(violations, "ProductId must be greater than 0.")
	}
	violations = append(violations, product.ValidateAttributes(sku, name, price)...)
	if len(violations) > 0 {
		return UpdateProductCommand{}, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return UpdateProductCommand{
		productID: productID,
		sku:       sku,
		name:      name,
		price:     price,
		isActive:  isActive,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Sku() string {
	return c.sku
}

func (c UpdateProductCommand) Name() string {
	return c.name
}

func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c UpdateProductCommand) IsActive() bool {
	return c.isActive
}
