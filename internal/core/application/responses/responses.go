// Package responses contains the read models returned by the application
// core and the pure mapping from domain aggregates onto them. Mapping has
// no side effects: statuses render as their symbolic names and the order
// concurrency token is encoded for transport as an entity tag.
package responses

import (
	"time"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// OrderLineResponse is the wire shape of one order line.
type OrderLineResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderResponse is the wire shape of an order, including the concurrency
// token callers present back on conditional status updates.
type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerID      int64               `json:"customerId"`
	Status          string              `json:"status"`
	SubTotal        decimal.Decimal     `json:"subTotal"`
	Total           decimal.Decimal     `json:"total"`
	DiscountPercent *decimal.Decimal    `json:"discountPercent,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	ETag            string              `json:"etag"`
	Lines           []OrderLineResponse `json:"lines"`
}

// FromOrder maps a persisted order aggregate to its response shape.
func FromOrder(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		Status:          o.Status().String(),
		SubTotal:        o.SubTotal(),
		Total:           o.Total(),
		DiscountPercent: o.DiscountPercent(),
		CreatedAt:       o.CreatedAt(),
		ETag:            order.EncodeToken(o.Version()),
		Lines:           lines,
	}
}

// CustomerResponse is the wire shape of a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromCustomer maps a persisted customer to its response shape.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt(),
	}
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Sku      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"isActive"`
}

// FromProduct maps a persisted product to its response shape.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID(),
		Sku:      p.Sku(),
		Name:     p.Name(),
		Price:    p.Price(),
		IsActive: p.IsActive(),
	}
}

// PagedResult wraps one page of items with the total match count taken
// before paging.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// TotalPages returns the number of pages the full result spans.
func (p PagedResult[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// HasNextPage reports whether a later page exists.
func (p PagedResult[T]) HasNextPage() bool {
	return p.Page < p.TotalPages()
}

// HasPreviousPage reports whether an earlier page exists.
func (p PagedResult[T]) HasPreviousPage() bool {
	return p.Page > 1
}
