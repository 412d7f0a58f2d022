package queries

import (
	"context"

	"appcenar/internal/core/ports"
)

// GetCartQueryHandler reads the session cart from the expiring session
// store. Unlike the other query handlers it does not touch the database:
// carts never reach it.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for session cart reads.
func NewGetCartQueryHandler(cartStore ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore}
}

// Handle executes the cart read. A missing or expired cart surfaces as the
// store's ObjectNotFoundError.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	sessionCart, err := h.cartStore.Get(ctx, query.SessionID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	return GetCartQueryResponse{
		MerchantID: sessionCart.MerchantID(),
		ItemIDs:    sessionCart.ItemIDs(),
		Quantities: sessionCart.Quantities(),
		CreatedAt:  sessionCart.CreatedAt(),
	}, nil
}
