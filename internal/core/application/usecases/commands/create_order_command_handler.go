package commands

import (
	"context"
	"errors"
	"time"

	"appcenar/internal/core/domain/model/cart"
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/core/domain/services"
	"appcenar/internal/core/ports"
)

var (
	// ErrNoProductsResolved is returned when none of the cart's item IDs
	// match the merchant's catalog. Nothing is persisted.
	ErrNoProductsResolved = errors.New("no cart items match the merchant catalog")

	// ErrAddressNotOwned is returned when the delivery address belongs to a
	// different client.
	ErrAddressNotOwned = errors.New("address does not belong to the client")
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The flat cart is decoded into quantities and resolved against the
// merchant's catalog; IDs the merchant does not sell are dropped. The
// surviving products are priced at the configured tax rate and captured
// as per-unit snapshot line items, and the order is persisted in Pending
// status within one transaction. After commit the client's session cart
// is cleared.
type CreateOrderCommandHandler struct {
	uowFactory OrderCreationUoWFactory
	cartStore  ports.CartStore
	pricing    services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderCreationUoWFactory, cartStore ports.CartStore) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		pricing:    services.NewPricingEngine(),
	}
}

// Handle processes the order creation command and returns the persisted order.
//
// Preconditions enforced here: the address exists and belongs to the
// ordering client, and at least one cart item resolves against the
// merchant's catalog. A cart of only unknown IDs returns
// ErrNoProductsResolved and persists nothing.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryAddress, err := uow.AddressRepository().Get(ctx, cmd.AddressID())
	if err != nil {
		return nil, err
	}
	if !deliveryAddress.BelongsTo(cmd.ClientID()) {
		return nil, ErrAddressNotOwned
	}

	items, err := h.resolveLineItems(ctx, uow, cmd.MerchantID(), cmd.ItemIDs())
	if err != nil {
		return nil, err
	}

	rate, err := uow.TaxConfigRepository().GetRate(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := h.pricing.Price(items, rate)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.MerchantID(),
		cmd.AddressID(),
		items,
		quote.Subtotal,
		quote.Tax,
		quote.Total,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Best effort: an uncleared cart expires on its own.
	_ = h.cartStore.Clear(ctx, cmd.ClientID())

	return newOrder, nil
}

// resolveLineItems expands the flat cart into per-unit snapshot line items
// using the merchant's catalog. Unknown IDs are dropped; a quantity of N
// yields N identical snapshots.
func (h *CreateOrderCommandHandler) resolveLineItems(
	ctx context.Context,
	uow OrderCreationUoW,
	merchantID kernel.UUID,
	itemIDs []kernel.UUID,
) ([]order.LineItem, error) {
	quantities := cart.Decode(itemIDs)

	distinct := make([]kernel.UUID, 0, len(quantities))
	for id := range quantities {
		distinct = append(distinct, id)
	}

	products, err := uow.ProductRepository().FindByIDs(ctx, merchantID, distinct)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProductsResolved
	}

	items := make([]order.LineItem, 0, len(itemIDs))
	for _, p := range products {
		snapshot, err := order.SnapshotOf(p)
		if err != nil {
			return nil, err
		}
		for i := 0; i < quantities[p.ID()]; i++ {
			items = append(items, snapshot)
		}
	}

	return items, nil
}
