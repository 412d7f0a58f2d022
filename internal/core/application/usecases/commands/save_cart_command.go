package commands

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/guard"
)

var ErrSaveCartCommandIsNotConstructed = errors.New(
	"SaveCartCommand must be created via NewSaveCartCommand constructor",
)

// SaveCartCommand represents a client submitting a cart for their session.
// The cart survives a detour (e.g. creating a delivery address) and is
// consumed when the order is placed.
type SaveCartCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	merchantID kernel.UUID
	itemIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveCartCommand creates a command to save a session cart.
// The flat item sequence must be non-empty.
func NewSaveCartCommand(sessionID, merchantID kernel.UUID, itemIDs []kernel.UUID) (SaveCartCommand, error) {
	cartCommand := SaveCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setSessionID(sessionID),
		cartCommand.setMerchantID(merchantID),
		cartCommand.setItemIDs(itemIDs),
	); err != nil {
		return SaveCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveCartCommand) Validate() error {
	return c.guard.Validate(ErrSaveCartCommandIsNotConstructed)
}

// SessionID returns the session (client) key the cart is stored under.
func (c SaveCartCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// MerchantID returns the merchant the cart shops from.
func (c SaveCartCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// ItemIDs returns the flat unit sequence. The returned slice is a copy.
func (c SaveCartCommand) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

func (c *SaveCartCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SaveCartCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *SaveCartCommand) setItemIDs(itemIDs []kernel.UUID) error {
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
