package queries

import (
	"context"

	"orders/internal/core/application/responses"

	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	"id":    "id",
	"sku":   "sku",
	"name":  "name",
	"price": "price",
}

// GetAllProductsQueryHandler lists products with whitelisted sorting and
// offset paging.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product listings.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) (responses.PagedResult[responses.ProductResponse], error) {
	if err := query.Validate(); err != nil {
		return responses.PagedResult[responses.ProductResponse]{}, err
	}

	where := ""
	if query.ActiveOnly() {
		where = " WHERE is_active"
	}

	result := responses.PagedResult[responses.ProductResponse]{
		Items:    make([]responses.ProductResponse, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	countRow := h.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM products" + where).Row()
	if err := countRow.Scan(&result.TotalCount); err != nil {
		return responses.PagedResult[responses.ProductResponse]{}, err
	}

	orderBy := resolveSort(query.Sort(), productSortColumns, "id ASC")
	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			price,
			is_active
		FROM products`+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset).Rows()
	if err != nil {
		return responses.PagedResult[responses.ProductResponse]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp responses.ProductResponse
		if err := rows.Scan(&resp.ID, &resp.Sku, &resp.Name, &resp.Price, &resp.IsActive); err != nil {
			return responses.PagedResult[responses.ProductResponse]{}, err
		}
		result.Items = append(result.Items, resp)
	}
	if err := rows.Err(); err != nil {
		return responses.PagedResult[responses.ProductResponse]{}, err
	}

	return result, nil
}
