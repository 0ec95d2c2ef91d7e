// Package orderrepo persists the order aggregate and its lines, handling
// the mapping between the domain model and its relational representation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database shape of an order header. RowVersion backs the
// optimistic concurrency check: every successful status update bumps it.
type OrderDTO struct {
	ID              int64               `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64               `gorm:"not null;index"`
	Status          int                 `gorm:"not null;index"`
	SubTotal        decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Total           decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	DiscountPercent decimal.NullDecimal `gorm:"type:numeric(5,2)"`
	CreatedAt       time.Time           `gorm:"not null;index"`
	RowVersion      uint64              `gorm:"not null;default:1"`
	Lines           []OrderLineDTO      `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database shape of one order line. The unit price is
// the product price snapshotted at order creation.
type OrderLineDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func linesFromDomain(orderID int64, lines []order.Line) []OrderLineDTO {
	dtos := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, OrderLineDTO{
			OrderID:   orderID,
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lines = append(lines, order.RestoreLine(
			lineDTO.ID,
			lineDTO.OrderID,
			lineDTO.ProductID,
			lineDTO.Quantity,
			lineDTO.UnitPrice,
		))
	}

	var discount *decimal.Decimal
	if dto.DiscountPercent.Valid {
		discount = &dto.DiscountPercent.Decimal
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.CreatedAt.UTC(),
		order.Status(dto.Status),
		discount,
		dto.SubTotal,
		dto.Total,
		dto.RowVersion,
		lines,
	)
}
