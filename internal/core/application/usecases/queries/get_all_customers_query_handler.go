package queries

import (
	"context"
	"time"

	"orders/internal/core/application/responses"

	"gorm.io/gorm"
)

var customerSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"createdat": "created_at",
}

// GetAllCustomersQueryHandler lists customers with whitelisted sorting and
// offset paging.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listings.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) (responses.PagedResult[responses.CustomerResponse], error) {
	if err := query.Validate(); err != nil {
		return responses.PagedResult[responses.CustomerResponse]{}, err
	}

	result := responses.PagedResult[responses.CustomerResponse]{
		Items:    make([]responses.CustomerResponse, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	countRow := h.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM customers").Row()
	if err := countRow.Scan(&result.TotalCount); err != nil {
		return responses.PagedResult[responses.CustomerResponse]{}, err
	}

	orderBy := resolveSort(query.Sort(), customerSortColumns, "id ASC")
	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			created_at
		FROM customers
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset).Rows()
	if err != nil {
		return responses.PagedResult[responses.CustomerResponse]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      responses.CustomerResponse
			createdAt time.Time
		)
		if err := rows.Scan(&resp.ID, &resp.Name, &resp.Email, &createdAt); err != nil {
			return responses.PagedResult[responses.CustomerResponse]{}, err
		}
		resp.CreatedAt = createdAt.UTC()
		result.Items = append(result.Items, resp)
	}
	if err := rows.Err(); err != nil {
		return responses.PagedResult[responses.CustomerResponse]{}, err
	}

	return result, nil
}
