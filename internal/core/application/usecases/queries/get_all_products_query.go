package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves a sorted page of products, optionally
// restricted to active ones.
type GetAllProductsQuery struct {
	activeOnly bool
	page       int
	pageSize   int
	sort       string

	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery(activeOnly bool, page, pageSize int, sort string) GetAllProductsQuery {
	page, pageSize = normalizePaging(page, pageSize)

	return GetAllProductsQuery{
		activeOnly: activeOnly,
		page:       page,
		pageSize:   pageSize,
		sort:       sort,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

func (q GetAllProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

func (q GetAllProductsQuery) Page() int {
	return q.page
}

func (q GetAllProductsQuery) PageSize() int {
	return q.pageSize
}

func (q GetAllProductsQuery) Sort() string {
	return q.sort
}
