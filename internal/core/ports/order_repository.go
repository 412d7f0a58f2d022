package ports

import (
	"context"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists changes to an order only if its stored status
	// still equals expected. When the stored row has moved on, the update
	// touches nothing and a StateConflictError is returned, letting two
	// concurrent assignment attempts resolve to exactly one winner.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line-item snapshot.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOldestPending retrieves the pending order that has been waiting
	// longest for a courier. Used by the dispatch loop.
	GetOldestPending(ctx context.Context) (*order.Order, error)
}
