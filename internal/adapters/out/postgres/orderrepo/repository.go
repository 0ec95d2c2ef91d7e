package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate in three steps: the header with zeroed
// totals to obtain the generated id, then the lines, then the computed
// totals. The caller's transaction makes the steps atomic.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	var discount decimal.NullDecimal
	if d := aggregate.DiscountPercent(); d != nil {
		discount = decimal.NullDecimal{Decimal: *d, Valid: true}
	}

	header := OrderDTO{
		CustomerID:      aggregate.CustomerID(),
		Status:          int(aggregate.Status()),
		SubTotal:        decimal.Zero,
		Total:           decimal.Zero,
		DiscountPercent: discount,
		CreatedAt:       aggregate.CreatedAt().UTC(),
		RowVersion:      aggregate.Version(),
	}
	if err := r.db.WithContext(ctx).Create(&header).Error; err != nil {
		return nil, err
	}

	lines := linesFromDomain(header.ID, aggregate.Lines())
	if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", header.ID).
		Updates(map[string]any{
			"sub_total": aggregate.SubTotal(),
			"total":     aggregate.Total(),
		}).Error
	if err != nil {
		return nil, err
	}

	header.SubTotal = aggregate.SubTotal()
	header.Total = aggregate.Total()
	header.Lines = lines

	persisted, err := toDomain(header)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.NotFound, "Order with id %d not found", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists the aggregate's status with a compare-and-swap on
// the row version, bumping the stored version on success. Zero affected
// rows means another writer got there first.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND row_version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"status":      int(aggregate.Status()),
			"row_version": gorm.Expr("row_version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.New(
			errs.ConcurrencyConflict,
			"The order was modified by another user. Please refresh and try again.",
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetPendingBefore retrieves Pending orders created strictly before the
// cutoff. Lines are not loaded; status transitions do not need them.
func (r *GormOrderRepository) GetPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND created_at < ?", int(order.Pending), cutoff.UTC()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
