package commands

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

const maxLineQuantity = 10_000

// OrderLineInput is one requested order position: which product and how many.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order for a
// customer. It carries the requested lines in their original order and an
// optional discount percent.
//
// Construction runs the structural validation rules: a positive customer
// id, a non-empty line list, and per line a positive product id and a
// quantity in (0, 10000). Every violation is collected and the aggregate,
// joined by "; ", is returned as a single Validation error so callers see
// all problems at once.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      int64
	lines           []OrderLineInput
	discountPercent *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates and validates an order-creation command.
// Existence and activity of the referenced customer and products are not
// checked here; that is the workflow engine's job.
func NewCreateOrderCommand(
	customerID int64,
	lines []OrderLineInput,
	discountPercent *decimal.Decimal,
) (CreateOrderCommand, error) {
	var violations []string

	if customerID <= 0 {
		violations = append(violations, "CustomerId must be greater than 0.")
	}
	if len(lines) == 0 {
		violations = append(violations, "Order must have at least one line item.")
	}
	for _, line := range lines {
		if line.ProductID <= 0 {
			violations = append(violations, "ProductId must be greater than 0.")
		}
		if line.Quantity <= 0 {
			violations = append(violations, "Quantity must be greater than 0.")
		} else if line.Quantity >= maxLineQuantity {
			violations = append(violations, "Quantity must not exceed 10,000.")
		}
	}

	if len(violations) > 0 {
		return CreateOrderCommand{}, errs.New(errs.Validation, strings.Join(violations, "; "))
	}

	return CreateOrderCommand{
		customerID:      customerID,
		lines:           lines,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identity of the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Lines returns the requested lines in their original order.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

// DiscountPercent returns the optional discount percent, nil when absent.
func (c CreateOrderCommand) DiscountPercent() *decimal.Decimal {
	return c.discountPercent
}
