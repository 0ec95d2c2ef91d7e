// Package productrepo persists catalog products, handling the mapping
// between the domain model and its relational representation.
package productrepo

import (
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the database shape of a product. Prices are stored as
// numeric to keep money exact.
type ProductDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Sku      string          `gorm:"size:50;not null;uniqueIndex"`
	Name     string          `gorm:"size:200;not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID(),
		Sku:      aggregate.Sku(),
		Name:     aggregate.Name(),
		Price:    aggregate.Price(),
		IsActive: aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) *product.Product {
	return product.RestoreProduct(dto.ID, dto.Sku, dto.Name, dto.Price, dto.IsActive)
}
