package commands

import (
	"context"

	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/core/domain/services"
)

// CompleteOrderCommandHandler finishes a delivery: the order moves to
// Completed and the courier is released back to Available, in one
// transaction. The order aggregate enforces that only the assigned
// courier may complete and that Completed is terminal.
type CompleteOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(uowFactory DispatchUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the completion command.
//
// Errors callers branch on:
//   - errs.ErrObjectNotFound: the order or courier does not exist
//   - order.ErrNotAssigned: the order is still Pending
//   - order.ErrNotAssignee: a different courier is assigned
//   - order.ErrAlreadyCompleted: completion is not idempotent
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	activeOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actingCourier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.CompleteDelivery(activeOrder, actingCourier); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, activeOrder, order.InProgress); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, actingCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
