package productrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product and returns it with the generated identity.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isPgViolation(err, uniqueViolation) {
			return nil, errs.Newf(errs.Conflict, "Product with SKU %s already exist.", aggregate.Sku())
		}
		return nil, err
	}

	persisted := toDomain(dto)
	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves attribute changes to an existing product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"sku":       aggregate.Sku(),
			"name":      aggregate.Name(),
			"price":     aggregate.Price(),
			"is_active": aggregate.IsActive(),
		})
	if result.Error != nil {
		if isPgViolation(result.Error, uniqueViolation) {
			return errs.Newf(errs.Conflict, "Product with SKU %s already exist.", aggregate.Sku())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.Newf(errs.NotFound, "Product with id %d was not found", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a product. Deletion is restricted while order lines
// reference the product; the schema-level violation surfaces as a Conflict.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, id)
	if result.Error != nil {
		if isPgViolation(result.Error, foreignKeyViolation) {
			return errs.Newf(errs.Conflict, "Product with id %d is referenced by orders and cannot be deleted", id)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.Newf(errs.NotFound, "Product with id %d was not found", id)
	}

	return nil
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.NotFound, "Product with id %d was not found", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// GetByIDs batch-fetches products keyed by id. Absent ids are simply
// missing from the map.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error) {
	products := make(map[int64]*product.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		products[dto.ID] = toDomain(dto)
	}

	return products, nil
}

// SkuTaken reports whether a product other than excludeID uses the SKU.
func (r *GormProductRepository) SkuTaken(ctx context.Context, sku string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("sku = ?", sku)
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
