// Package customerrepo persists customer entities, handling the mapping
// between the domain model and its relational representation.
package customerrepo

import (
	"time"

	"orders/internal/core/domain/model/customer"
)

// CustomerDTO is the database shape of a customer. The email uniqueness
// invariant is enforced at both the application and schema level.
type CustomerDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		CreatedAt: aggregate.CreatedAt().UTC(),
	}
}

func toDomain(dto CustomerDTO) *customer.Customer {
	return customer.RestoreCustomer(dto.ID, dto.Name, dto.Email, dto.CreatedAt.UTC())
}
