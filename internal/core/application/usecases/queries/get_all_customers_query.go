package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves a sorted page of customers.
type GetAllCustomersQuery struct {
	page     int
	pageSize int
	sort     string

	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates the listing query. Paging is normalized
// rather than rejected and unknown sort keys fall back to id ascending.
func NewGetAllCustomersQuery(page, pageSize int, sort string) GetAllCustomersQuery {
	page, pageSize = normalizePaging(page, pageSize)

	return GetAllCustomersQuery{
		page:     page,
		pageSize: pageSize,
		sort:     sort,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

func (q GetAllCustomersQuery) Page() int {
	return q.page
}

func (q GetAllCustomersQuery) PageSize() int {
	return q.pageSize
}

func (q GetAllCustomersQuery) Sort() string {
	return q.sort
}
