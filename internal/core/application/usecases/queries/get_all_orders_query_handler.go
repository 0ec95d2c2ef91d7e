package queries

import (
	"context"
	"strings"
	"time"

	"orders/internal/core/application/responses"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var orderSortColumns = map[string]string{
	"id":        "id",
	"createdat": "created_at",
	"total":     "total",
	"status":    "status",
}

// GetAllOrdersQueryHandler lists orders with conjunctive filters,
// whitelisted sorting and offset paging. The total count is taken over the
// filtered set before the page is cut.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. Lines are fetched in one extra query for
// the whole page and grouped by order id in memory.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (responses.PagedResult[responses.OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return responses.PagedResult[responses.OrderResponse]{}, err
	}

	where, args := buildOrderFilters(query)

	result := responses.PagedResult[responses.OrderResponse]{
		Items:    make([]responses.OrderResponse, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders"+where, args...,
	).Row()
	if err := countRow.Scan(&result.TotalCount); err != nil {
		return responses.PagedResult[responses.OrderResponse]{}, err
	}

	orderBy := resolveSort(query.Sort(), orderSortColumns, "id ASC")
	offset := (query.Page() - 1) * query.PageSize()

	pageArgs := append(args, query.PageSize(), offset)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			sub_total,
			total,
			discount_percent,
			created_at,
			row_version
		FROM orders`+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return responses.PagedResult[responses.OrderResponse]{}, err
	}
	defer rows.Close()

	orderIDs := make([]int64, 0, query.PageSize())
	for rows.Next() {
		var (
			resp      responses.OrderResponse
			status    int
			discount  decimal.NullDecimal
			createdAt time.Time
			version   uint64
		)

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&status,
			&resp.SubTotal,
			&resp.Total,
			&discount,
			&createdAt,
			&version,
		)
		if err != nil {
			return responses.PagedResult[responses.OrderResponse]{}, err
		}

		resp.Status = order.Status(status).String()
		if discount.Valid {
			resp.DiscountPercent = &discount.Decimal
		}
		resp.CreatedAt = createdAt.UTC()
		resp.ETag = order.EncodeToken(version)
		resp.Lines = make([]responses.OrderLineResponse, 0)

		result.Items = append(result.Items, resp)
		orderIDs = append(orderIDs, resp.ID)
	}
	if err = rows.Err(); err != nil {
		return responses.PagedResult[responses.OrderResponse]{}, err
	}

	if len(orderIDs) == 0 {
		return result, nil
	}

	linesByOrder, err := h.fetchLinesFor(ctx, orderIDs)
	if err != nil {
		return responses.PagedResult[responses.OrderResponse]{}, err
	}
	for i := range result.Items {
		if lines, ok := linesByOrder[result.Items[i].ID]; ok {
			result.Items[i].Lines = lines
		}
	}

	return result, nil
}

func (h GetAllOrdersQueryHandler) fetchLinesFor(
	ctx context.Context, orderIDs []int64,
) (map[int64][]responses.OrderLineResponse, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(orderIDs)), ",")
	args := make([]any, 0, len(orderIDs))
	for _, id := range orderIDs {
		args = append(args, id)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id IN (`+placeholders+`)
		ORDER BY id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[int64][]responses.OrderLineResponse, len(orderIDs))
	for rows.Next() {
		var (
			orderID int64
			line    responses.OrderLineResponse
		)
		if err := rows.Scan(&orderID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}
		grouped[orderID] = append(grouped[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}

func buildOrderFilters(query GetAllOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}
	if query.CustomerID() > 0 {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, query.CustomerID())
	}
	if from := query.DateFrom(); from != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, from.UTC())
	}
	if to := query.DateTo(); to != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, to.UTC())
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
