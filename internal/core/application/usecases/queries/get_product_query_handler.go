package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/application/responses"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler reads one product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (responses.ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return responses.ProductResponse{}, err
	}

	var resp responses.ProductResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			price,
			is_active
		FROM products
		WHERE id = ?
	`, query.ProductID()).Row()

	err := row.Scan(&resp.ID, &resp.Sku, &resp.Name, &resp.Price, &resp.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return responses.ProductResponse{}, errs.Newf(
			errs.NotFound, "Product with id %d was not found", query.ProductID(),
		)
	}
	if err != nil {
		return responses.ProductResponse{}, err
	}

	return resp, nil
}
