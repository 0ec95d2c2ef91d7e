package customerrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/customer"
	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes surfaced when schema constraints fire ahead of the
// application-level checks.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and returns it with the generated identity.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isPgViolation(err, uniqueViolation) {
			return nil, errs.Newf(errs.Conflict, "Email %s already exists", aggregate.Email())
		}
		return nil, err
	}

	persisted := toDomain(dto)
	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves name and email changes to an existing customer.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"name":  aggregate.Name(),
			"email": aggregate.Email(),
		})
	if result.Error != nil {
		if isPgViolation(result.Error, uniqueViolation) {
			return errs.Newf(errs.Conflict, "Customer with email %s already exists", aggregate.Email())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.Newf(errs.NotFound, "Customer with id %d not found", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a customer. Deletion is restricted while orders reference
// the customer; the schema-level violation surfaces as a Conflict.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, id)
	if result.Error != nil {
		if isPgViolation(result.Error, foreignKeyViolation) {
			return errs.Newf(errs.Conflict, "Customer with id %d has orders and cannot be deleted", id)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.Newf(errs.NotFound, "Customer with id %d not found", id)
	}

	return nil
}

// Get retrieves a customer by id.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.NotFound, "Customer with id %d not found", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// ExistsByID reports whether a customer with the given id exists.
func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// EmailTaken reports whether a customer other than excludeID uses the email.
func (r *GormCustomerRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func isPgViolation(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
