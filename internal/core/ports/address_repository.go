package ports

import (
	"context"

	"appcenar/internal/core/domain/model/address"
	"appcenar/internal/core/domain/model/kernel"
)

// AddressRepository defines the read contract for client delivery addresses.
type AddressRepository interface {
	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
}
