package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for the order workflow. It owns an ordered
// collection of Lines and manages the lifecycle from creation through
// payment or cancellation.
//
// Order maintains these invariants:
//   - Must reference an existing customer (checked by the workflow, the
//     aggregate only requires a positive id)
//   - Must contain at least one line
//   - SubTotal is the sum of line totals in line order
//   - Total follows the discount formula (see applyDiscount)
//   - Status transitions follow the Pending -> {Paid, Cancelled} machine
//   - The version changes on every persisted update and serves as the
//     optimistic concurrency token
type Order struct {
	id              int64
	customerID      int64
	createdAt       time.Time
	status          Status
	discountPercent *decimal.Decimal
	subTotal        decimal.Decimal
	total           decimal.Decimal
	version         uint64
	lines           []Line

	guard guard.ConstructorGuard
}

// NewOrder creates a new Pending order from already-validated lines,
// computing the subtotal and total at construction time.
//
// The subtotal is the sum of quantity times unit price over the lines in
// the order they were given. When a discount percent greater than zero is
// supplied the total becomes subtotal * (discountPercent / 100); otherwise
// the total equals the subtotal. The discount formula replaces the
// subtotal instead of subtracting from it; see applyDiscount.
func NewOrder(customerID int64, lines []Line, discountPercent *decimal.Decimal, createdAt time.Time) (*Order, error) {
	if customerID <= 0 {
		return nil, errs.NewWithCause(errs.Validation, "customerId is invalid",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	if len(lines) == 0 {
		return nil, errs.New(errs.Validation, "Order must have at least one line item.")
	}

	subTotal := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.Total())
	}

	return &Order{
		customerID:      customerID,
		createdAt:       createdAt,
		status:          Pending,
		discountPercent: discountPercent,
		subTotal:        subTotal,
		total:           applyDiscount(subTotal, discountPercent),
		version:         1,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs a persisted order aggregate including its
// generated identity and row version. Intended for repository use only.
func RestoreOrder(
	id int64,
	customerID int64,
	createdAt time.Time,
	status Status,
	discountPercent *decimal.Decimal,
	subTotal decimal.Decimal,
	total decimal.Decimal,
	version uint64,
	lines []Line,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		createdAt:       createdAt,
		status:          status,
		discountPercent: discountPercent,
		subTotal:        subTotal,
		total:           total,
		version:         version,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// applyDiscount computes the order total from the subtotal.
//
// With a discount present the total is `subtotal * (discountPercent / 100)`,
// which replaces the subtotal instead of reducing it. Billing depends on
// this exact formula, so it stays until product signs off on changing it;
// tests document the behavior explicitly.
func applyDiscount(subTotal decimal.Decimal, discountPercent *decimal.Decimal) decimal.Decimal {
	if discountPercent == nil || !discountPercent.GreaterThan(decimal.Zero) {
		return subTotal
	}
	return subTotal.Mul(discountPercent.Div(decimal.NewFromInt(100)))
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ChangeStatus transitions the order to the target status, enforcing the
// state machine. The persisted row version is bumped by the repository on
// write, not here.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ID returns the order's identity (zero until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identity of the owning customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DiscountPercent returns the optional discount percent, nil when absent.
func (o *Order) DiscountPercent() *decimal.Decimal {
	return o.discountPercent
}

// SubTotal returns the sum of line totals before discount.
func (o *Order) SubTotal() decimal.Decimal {
	return o.subTotal
}

// Total returns the order total after the discount formula.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Version returns the optimistic concurrency token value currently held
// by this aggregate instance.
func (o *Order) Version() uint64 {
	return o.version
}

// Lines returns the order's lines in their original request order.
func (o *Order) Lines() []Line {
	return o.lines
}
