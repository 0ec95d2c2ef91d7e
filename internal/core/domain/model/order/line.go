package order

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is a single position of an order. The unit price is captured from
// the product at order-creation time and never changes afterwards, so
// later product price edits do not affect historical orders.
type Line struct {
	id        int64
	orderID   int64
	productID int64
	quantity  int
	unitPrice decimal.Decimal
}

// NewLine creates an order line for the given product with a snapshotted
// unit price. Quantity must be strictly positive.
func NewLine(productID int64, quantity int, unitPrice decimal.Decimal) (Line, error) {
	if productID <= 0 {
		return Line{}, errs.NewWithCause(errs.Validation, "productId is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	if quantity <= 0 {
		return Line{}, errs.NewWithCause(errs.Validation, "quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// RestoreLine reconstructs a persisted line including its identities.
// Intended for repository use only.
func RestoreLine(id, orderID, productID int64, quantity int, unitPrice decimal.Decimal) Line {
	return Line{
		id:        id,
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

// ID returns the line's identity (zero until persisted).
func (l Line) ID() int64 {
	return l.id
}

// OrderID returns the identity of the owning order (zero until persisted).
func (l Line) OrderID() int64 {
	return l.orderID
}

// ProductID returns the identity of the referenced product.
func (l Line) ProductID() int64 {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the product price snapshotted at order-creation time.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
