package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders and their lines are written together; after creation only the
// status (and implicitly the row version) ever changes.
type OrderRepository interface {
	// Add persists a new order aggregate: the header row first to obtain
	// the generated identity, then the lines, then the computed totals.
	// Returns the persisted aggregate with identities and initial version.
	// Must run inside a unit-of-work transaction so the header and lines
	// become visible together or not at all.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order with its lines in one read.
	// Returns a NotFound error when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus persists the aggregate's status using a compare-and-swap
	// on the row version held by the aggregate, bumping the stored version
	// on success. A version mismatch (another writer got there first)
	// returns a ConcurrencyConflict error.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// GetPendingBefore retrieves all Pending orders created strictly
	// before the cutoff. Used by the expiry job.
	GetPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
