package commands

import (
	"context"
	"time"

	"appcenar/internal/core/domain/model/cart"
	"appcenar/internal/core/ports"
)

// SaveCartCommandHandler stores a validated session cart. Carts live in
// the expiring session store, not in the transactional database, so no
// unit of work is involved.
type SaveCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewSaveCartCommandHandler creates a handler for cart persistence.
func NewSaveCartCommandHandler(cartStore ports.CartStore) SaveCartCommandHandler {
	return SaveCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle validates the cart and writes it to the session store,
// replacing any previous cart for the session.
func (h *SaveCartCommandHandler) Handle(ctx context.Context, cmd SaveCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sessionCart, err := cart.NewCart(cmd.MerchantID(), cmd.ItemIDs(), time.Now().UTC())
	if err != nil {
		return err
	}

	return h.cartStore.Set(ctx, cmd.SessionID(), sessionCart)
}
