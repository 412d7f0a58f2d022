package ports

import (
	"context"

	"appcenar/internal/core/domain/model/cart"
	"appcenar/internal/core/domain/model/kernel"
)

// CartStore holds the in-flight cart of each client session. Carts are
// working state, not part of the transactional order data: they live in a
// fast expiring store and are cleared once an order is placed from them.
//
// The session key is the client id: one in-flight cart per client.
type CartStore interface {
	// Get retrieves the session's current cart.
	// Returns an ObjectNotFoundError when the session has no cart.
	Get(ctx context.Context, sessionID kernel.UUID) (*cart.Cart, error)

	// Set replaces the session's current cart.
	Set(ctx context.Context, sessionID kernel.UUID, c *cart.Cart) error

	// Clear removes the session's cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context, sessionID kernel.UUID) error
}
