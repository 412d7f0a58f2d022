package order

import (
	"errors"
	"fmt"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyAssigned is returned when assigning a courier to an order that
	// already has one. Reassignment is not supported.
	ErrAlreadyAssigned = errors.New("order is already assigned to a courier")

	// ErrAlreadyCompleted is returned when operating on a completed order.
	ErrAlreadyCompleted = errors.New("order is already completed")

	// ErrNotAssigned is returned when completing an order that has no courier yet.
	ErrNotAssigned = errors.New("order has not been assigned to a courier")

	// ErrNotAssignee is returned when a courier other than the assigned one
	// attempts to complete the order.
	ErrNotAssignee = errors.New("order is assigned to a different courier")

	// ErrTotalsMismatch is returned when subtotal, tax and total do not satisfy
	// total == subtotal + tax, or the subtotal does not match the line items.
	ErrTotalsMismatch = errors.New("order totals are inconsistent")
)

// Order is the aggregate root for the order lifecycle. It captures a
// point-in-time snapshot of the purchased products (one line item per
// unit), the priced totals, and drives the monotonic state machine
// Pending -> InProgress -> Completed in coordination with courier
// availability.
//
// Invariants:
//   - total == subtotal + tax (exact, in decimal arithmetic)
//   - subtotal equals the sum of line item unit prices
//   - line-item count equals the number of units purchased
//   - courierID is non-nil iff status is InProgress or Completed
//   - transitions are monotonic; Completed is terminal
type Order struct {
	id         kernel.UUID
	clientID   kernel.UUID
	merchantID kernel.UUID
	courierID  *kernel.UUID
	addressID  kernel.UUID
	items      []LineItem
	subtotal   kernel.Money
	tax        kernel.Money
	total      kernel.Money
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no courier.
//
// All identifiers must be valid, the line-item snapshot must be non-empty,
// and the totals must be consistent: subtotal equal to the sum of line
// item unit prices and total equal to subtotal plus tax.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	merchantID kernel.UUID,
	addressID kernel.UUID,
	items []LineItem,
	subtotal kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setMerchantID(merchantID),
		order.setAddressID(addressID),
		order.setItems(items),
		order.setTotals(subtotal, tax, total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status and courier assignment. The restored order must
// still satisfy all aggregate invariants, including status/courier
// consistency.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	merchantID kernel.UUID,
	courierID *kernel.UUID,
	addressID kernel.UUID,
	items []LineItem,
	subtotal kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	order := &Order{
		status:        status,
		courierID:     courierID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setMerchantID(merchantID),
		order.setAddressID(addressID),
		order.setItems(items),
		order.setTotals(subtotal, tax, total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// MerchantID returns the fulfilling merchant's identifier.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// Courier returns the assigned courier's ID, or nil while Pending.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// AddressID returns the delivery address reference.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Items returns the per-unit snapshot line items. The slice is a copy.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// UnitCount returns the number of units purchased.
func (o *Order) UnitCount() int {
	return len(o.items)
}

// Subtotal returns the pre-tax amount.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal plus tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign assigns the order to a courier and moves it to InProgress.
//
// Only Pending orders can be assigned. Assigning an InProgress order
// returns ErrAlreadyAssigned and a Completed order ErrAlreadyCompleted,
// so callers can distinguish "already handled" from other failures.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case InProgress:
		return ErrAlreadyAssigned
	case Completed:
		return ErrAlreadyCompleted
	default:
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as delivered.
//
// Only the assigned courier may complete the order (ErrNotAssignee
// otherwise), and only from InProgress: completing a Pending order
// returns ErrNotAssigned and a Completed one ErrAlreadyCompleted.
func (o *Order) Complete(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case Pending:
		return ErrNotAssigned
	case Completed:
		return ErrAlreadyCompleted
	default:
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotAssignee
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.clientID = id
	return nil
}

func (o *Order) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.merchantID = id
	return nil
}

func (o *Order) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.addressID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(subtotal, tax, total kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), tax.Validate(), total.Validate()); err != nil {
		return err
	}

	itemSum := kernel.ZeroMoney()
	for _, item := range o.items {
		itemSum = itemSum.Add(item.UnitPrice())
	}
	if !itemSum.IsEqual(subtotal) {
		return fmt.Errorf("%w: subtotal %s does not match line items %s",
			ErrTotalsMismatch, subtotal, itemSum)
	}

	if !subtotal.Add(tax).IsEqual(total) {
		return fmt.Errorf("%w: total %s != subtotal %s + tax %s",
			ErrTotalsMismatch, total, subtotal, tax)
	}

	o.subtotal = subtotal
	o.tax = tax
	o.total = total
	return nil
}
