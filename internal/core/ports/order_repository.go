package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
//
// Soft-deleted orders are invisible to every read method: Get, GetForUpdate,
// GetAll, GetAllByUser and CountByStatus all exclude rows with a deletion
// timestamp. Returned orders always carry their populated User.
type OrderRepository interface {
	// Add persists a new order. The referenced user must already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and updatedAt of an existing, non-deleted order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a non-deleted order by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist or is deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate behaves like Get and additionally locks the row until the
	// surrounding transaction ends. Only meaningful inside a unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all non-deleted orders, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUser retrieves the non-deleted orders placed by userID, newest first.
	// An unknown user yields an empty slice, not an error.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// SoftDelete marks the order as deleted at deletedAt. The row is kept.
	// Returns errs.ObjectNotFoundError when the order is missing or already deleted.
	SoftDelete(ctx context.Context, id kernel.UUID, deletedAt time.Time) error

	// CountByStatus returns the number of non-deleted orders per status.
	// Statuses without orders are absent from the map.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
