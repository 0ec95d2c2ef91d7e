package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/application/responses"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads one customer from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single customer lookups.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (responses.CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return responses.CustomerResponse{}, err
	}

	var (
		resp      responses.CustomerResponse
		createdAt time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			created_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID()).Row()

	err := row.Scan(&resp.ID, &resp.Name, &resp.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return responses.CustomerResponse{}, errs.Newf(
			errs.NotFound, "Customer with id %d not found", query.CustomerID(),
		)
	}
	if err != nil {
		return responses.CustomerResponse{}, err
	}

	resp.CreatedAt = createdAt.UTC()

	return resp, nil
}
