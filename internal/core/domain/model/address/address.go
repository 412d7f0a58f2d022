// Package address provides the delivery address entity owned by a client.
package address

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
	ErrDescriptionIsRequired   = errs.NewValueIsRequiredError("description")
)

// Address is a client-owned delivery destination.
type Address struct {
	id          kernel.UUID
	clientID    kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The description carries the
// human-readable destination and must not be empty.
func NewAddress(id, clientID kernel.UUID, name, description string) (*Address, error) {
	a := &Address{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setClientID(clientID),
		a.setDescription(description),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// ClientID returns the owning client's identifier.
func (a *Address) ClientID() kernel.UUID {
	return a.clientID
}

// Name returns the address label ("Casa", "Oficina").
func (a *Address) Name() string {
	return a.name
}

// Description returns the destination text.
func (a *Address) Description() string {
	return a.description
}

// BelongsTo reports whether the address is owned by the given client.
func (a *Address) BelongsTo(clientID kernel.UUID) bool {
	return a.clientID.IsEqual(clientID)
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.clientID = id
	return nil
}

func (a *Address) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	a.description = description
	return nil
}
