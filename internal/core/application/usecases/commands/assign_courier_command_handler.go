package commands

import (
	"context"
	"errors"

	"appcenar/internal/core/domain/model/courier"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/core/domain/services"
	"appcenar/internal/pkg/errs"
)

var (
	// ErrNoPendingOrder is returned when the dispatch loop finds nothing to
	// assign. An expected outcome, not a failure.
	ErrNoPendingOrder = errors.New("no pending order to assign")

	// ErrNoCourierAvailable is returned when every active courier is busy.
	// The order stays Pending with no side effects.
	ErrNoCourierAvailable = errors.New("no courier available")
)

// AssignCourierCommandHandler pairs a pending order with an available
// courier inside one transaction.
//
// The courier row is selected under a transaction-scoped lock that skips
// rows locked by concurrent dispatches, and the order update is
// conditional on the order still being Pending, so two racing assignment
// attempts resolve to exactly one winner: the loser sees a conflict and
// the courier is never double-booked.
type AssignCourierCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory DispatchUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the assignment command.
//
// Errors callers branch on:
//   - ErrNoPendingOrder: oldest-pending mode found nothing
//   - ErrNoCourierAvailable: all couriers busy; nothing was changed
//   - order.ErrAlreadyAssigned / order.ErrAlreadyCompleted: the order has
//     moved on (distinct from not-found)
//   - errs.ErrObjectNotFound: the targeted order does not exist
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	var (
		pendingOrder *order.Order
		err          error
	)
	if cmd.OrderID() != nil {
		pendingOrder, err = orderRepo.Get(ctx, *cmd.OrderID())
	} else {
		pendingOrder, err = orderRepo.GetOldestPending(ctx)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoPendingOrder
		}
	}
	if err != nil {
		return err
	}

	switch pendingOrder.Status() {
	case order.InProgress:
		return order.ErrAlreadyAssigned
	case order.Completed:
		return order.ErrAlreadyCompleted
	default:
	}

	claimedCourier, err := courierRepo.GetOneAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoCourierAvailable
	}
	if err != nil {
		return err
	}

	if _, err = h.dispatcher.Dispatch(pendingOrder, []*courier.Courier{claimedCourier}); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, pendingOrder, order.Pending); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, claimedCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
