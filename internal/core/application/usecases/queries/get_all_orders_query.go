package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// OrderFilters narrows the order listing. All filters are conjunctive and
// every field is optional: the zero value means "do not filter on this".
// Dates bound CreatedAt inclusively on both ends.
type OrderFilters struct {
	Status     string
	CustomerID int64
	DateFrom   *time.Time
	DateTo     *time.Time
}

// GetAllOrdersQuery retrieves a filtered, sorted page of orders.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(OrderFilters{Status: "Paid"}, 1, 20, "total_desc")
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("%d of %d orders\n", len(page.Items), page.TotalCount)
type GetAllOrdersQuery struct {
	status     *order.Status
	customerID int64
	dateFrom   *time.Time
	dateTo     *time.Time
	page       int
	pageSize   int
	sort       string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates the listing query. An unparseable status
// filter is a Validation error; unknown sort keys are tolerated and fall
// back to id ascending later.
func NewGetAllOrdersQuery(filters OrderFilters, page, pageSize int, sort string) (GetAllOrdersQuery, error) {
	query := GetAllOrdersQuery{
		customerID: filters.CustomerID,
		dateFrom:   filters.DateFrom,
		dateTo:     filters.DateTo,
		sort:       sort,
		guard:      guard.NewConstructorGuard(),
	}

	if filters.Status != "" {
		status, err := order.ParseStatus(filters.Status)
		if err != nil {
			return GetAllOrdersQuery{}, errs.Newf(errs.Validation, "Invalid status filter %s", filters.Status)
		}
		query.status = &status
	}

	if filters.CustomerID < 0 {
		return GetAllOrdersQuery{}, errs.New(errs.Validation, "CustomerId must be greater than 0.")
	}

	query.page, query.pageSize = normalizePaging(page, pageSize)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unset.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, zero when unset.
func (q GetAllOrdersQuery) CustomerID() int64 {
	return q.customerID
}

// DateFrom returns the inclusive lower CreatedAt bound, nil when unset.
func (q GetAllOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper CreatedAt bound, nil when unset.
func (q GetAllOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Page returns the normalized 1-based page number.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the normalized page size.
func (q GetAllOrdersQuery) PageSize() int {
	return q.pageSize
}

// Sort returns the raw sort key as supplied by the caller.
func (q GetAllOrdersQuery) Sort() string {
	return q.sort
}
