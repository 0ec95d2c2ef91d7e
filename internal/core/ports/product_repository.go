package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product entities.
type ProductRepository interface {
	// Add persists a new product and returns it with its generated identity.
	Add(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Update persists changes to an existing product.
	// Returns a NotFound error when the product does not exist.
	Update(ctx context.Context, aggregate *product.Product) error

	// Delete removes a product. Returns a NotFound error when absent.
	// The store restricts deletion while order lines reference the product.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a product by identity.
	// Returns a NotFound error when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetByIDs batch-fetches products for the given distinct identities in
	// one query, keyed by identity. Absent identities are simply missing
	// from the result; the caller decides what absence means.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)

	// SkuTaken reports whether another product already uses the SKU.
	// excludeID ignores one product; pass zero for creates.
	SkuTaken(ctx context.Context, sku string, excludeID int64) (bool, error)
}
