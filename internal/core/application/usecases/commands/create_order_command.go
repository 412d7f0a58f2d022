package commands

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrCartIsEmpty is returned when the command carries no item IDs.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")
)

// CreateOrderCommand represents a request to place an order from a cart.
// It carries the cart in its flat form: one product ID per unit purchased,
// so two units of the same product appear twice.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, clientID, merchantID, addressID, itemIDs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, cartStore)
//	order, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	merchantID kernel.UUID
	addressID  kernel.UUID
	itemIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// All identifiers must be valid and the flat item sequence non-empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	merchantID kernel.UUID,
	addressID kernel.UUID,
	itemIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setMerchantID(merchantID),
		orderCommand.setAddressID(addressID),
		orderCommand.setItemIDs(itemIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// MerchantID returns the merchant the cart shops from.
func (c CreateOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// AddressID returns the delivery address reference.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// ItemIDs returns the flat unit sequence. The returned slice is a copy.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrCartIsEmpty
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}
