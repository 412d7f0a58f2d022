// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"appcenar/internal/core/domain/model/courier"
	"appcenar/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and claiming courier entities
// for the dispatch workflow.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetOneAvailable selects one active, available courier and locks the
	// row for the remainder of the current transaction. Candidates are
	// ordered by name so selection is deterministic; rows locked by a
	// concurrent transaction are skipped, not waited on, so two parallel
	// dispatches never pick the same courier. The caller claims the
	// aggregate and persists it via Update before committing.
	//
	// Returns an ObjectNotFoundError when no courier is available.
	GetOneAvailable(ctx context.Context) (*courier.Courier, error)
}
