package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/application/responses"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle retrieves the order, its lines sorted by line id, and the
// concurrency token derived from the stored row version.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (responses.OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return responses.OrderResponse{}, err
	}

	var (
		resp      responses.OrderResponse
		status    int
		discount  decimal.NullDecimal
		createdAt time.Time
		version   uint64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			sub_total,
			total,
			discount_percent,
			created_at,
			row_version
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&status,
		&resp.SubTotal,
		&resp.Total,
		&discount,
		&createdAt,
		&version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return responses.OrderResponse{}, errs.Newf(errs.NotFound, "Order with id %d not found", query.OrderID())
	}
	if err != nil {
		return responses.OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	if discount.Valid {
		resp.DiscountPercent = &discount.Decimal
	}
	resp.CreatedAt = createdAt.UTC()
	resp.ETag = order.EncodeToken(version)

	resp.Lines, err = h.fetchLines(ctx, query.OrderID())
	if err != nil {
		return responses.OrderResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fetchLines(ctx context.Context, orderID int64) ([]responses.OrderLineResponse, error) {
	lines := make([]responses.OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line responses.OrderLineResponse
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
