package courier

import (
	"errors"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
	"appcenar/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsBusy is returned when claiming a courier who already has an order.
	ErrCourierIsBusy = errors.New("courier is busy with another order")
	// ErrCourierIsInactive is returned when claiming a deactivated courier.
	ErrCourierIsInactive = errors.New("courier account is deactivated")
	// ErrCourierIsNotBusy is returned when releasing a courier who has no order.
	ErrCourierIsNotBusy = errors.New("courier has no order in progress")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity and availability
// for the dispatch process.
//
// Business rules:
//   - Courier must have a valid UUID and a non-empty name
//   - A courier carries at most one order at a time: taking an order
//     flips Available -> Busy, delivering it flips Busy -> Available
//   - Deactivated couriers keep their availability state but can never
//     be claimed for new orders
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// availability tracks whether the courier can take an order
	availability Availability
	// active marks whether the courier account is enabled for dispatch
	active bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new active, available Courier.
// This is the only way to create a fresh Courier instance.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	courier := &Courier{
		availability: Available,
		active:       true,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability and active flag.
func RestoreCourier(id kernel.UUID, name string, availability Availability, active bool) (*Courier, error) {
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	courier := &Courier{
		availability: availability,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Availability returns the courier's current availability.
func (c *Courier) Availability() Availability {
	return c.availability
}

// IsAvailable reports whether the courier can be claimed for an order.
func (c *Courier) IsAvailable() bool {
	return c.active && c.availability == Available
}

// IsActive reports whether the courier account is enabled for dispatch.
func (c *Courier) IsActive() bool {
	return c.active
}

// Claim marks the courier as busy with an order.
//
// Only active, available couriers can be claimed: a Busy courier returns
// ErrCourierIsBusy and a deactivated one ErrCourierIsInactive.
func (c *Courier) Claim() error {
	if !c.active {
		return ErrCourierIsInactive
	}
	if c.availability == Busy {
		return ErrCourierIsBusy
	}

	c.availability = Busy
	return nil
}

// Release marks the courier as available again after a delivery.
// Releasing a courier who is not Busy returns ErrCourierIsNotBusy.
func (c *Courier) Release() error {
	if c.availability != Busy {
		return ErrCourierIsNotBusy
	}

	c.availability = Available
	return nil
}

// Deactivate disables the courier account for dispatch.
// An in-flight delivery can still be completed and released.
func (c *Courier) Deactivate() {
	c.active = false
}

// Activate enables the courier account for dispatch.
func (c *Courier) Activate() {
	c.active = true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
