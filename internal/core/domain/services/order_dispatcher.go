package services

import (
	"errors"

	"appcenar/internal/core/domain/model/courier"
	"appcenar/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch. This occurs when either no couriers are provided or none
// of the provided couriers is active and available.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service that pairs a pending order with an
// available courier, mutating both aggregates consistently: the courier is
// claimed (Available -> Busy) and the order assigned (Pending -> InProgress)
// in a single operation. Callers persist both aggregates in one transaction.
//
// Business rules:
//   - Orders must be Pending to be dispatched
//   - Only active, available couriers are considered
//   - Candidates are evaluated in the order given; repositories provide a
//     deterministic ordering (by name)
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns the order to the first claimable courier.
//
// Returns ErrCourierNotFound when no candidate is active and available.
// Order-side failures (already assigned, already completed) surface as the
// order aggregate's errors without touching any courier.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	selected, err := d.findAvailableCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = selected.Claim(); err != nil {
		return nil, err
	}

	if err = o.Assign(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// CompleteDelivery finishes the order on behalf of the courier and releases
// them for new work. Only the assigned courier may complete; the order
// aggregate enforces ownership and lifecycle rules.
func (d OrderDispatcher) CompleteDelivery(o *order.Order, c *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := o.Complete(c.ID()); err != nil {
		return err
	}

	return c.Release()
}

func (d OrderDispatcher) findAvailableCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() {
			return c, nil
		}
	}
	return nil, ErrCourierNotFound
}
