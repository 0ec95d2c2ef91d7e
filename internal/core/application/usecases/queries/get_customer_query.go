package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single customer by id.
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.New(errs.Validation, "CustomerId must be greater than 0.")
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() int64 {
	return q.customerID
}
