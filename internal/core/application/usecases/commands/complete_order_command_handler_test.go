package commands_test

import (
	"context"
	"testing"

	"appcenar/internal/core/application/usecases/commands"
	"appcenar/internal/core/domain/model/courier"
	"appcenar/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	assignedCourier := testCourier(t, "Ana")
	require.NoError(t, assignedCourier.Claim())

	testOrder := testPendingOrder(t)
	require.NoError(t, testOrder.Assign(assignedCourier.ID()))

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID(), assignedCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("Get", ctx, assignedCourier.ID()).Return(assignedCourier, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.InProgress).Return(nil).Once(),
		courierRepo.On("Update", ctx, assignedCourier).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	assert.Equal(t, courier.Available, assignedCourier.Availability())

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotAssignee(t *testing.T) {
	ctx := context.Background()

	testOrder := testPendingOrder(t)
	require.NoError(t, testOrder.Assign(testCourier(t, "Ana").ID()))

	stranger := testCourier(t, "Bruno")
	require.NoError(t, stranger.Claim())

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID(), stranger.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	courierRepo.On("Get", ctx, stranger.ID()).Return(stranger, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNotAssignee)
	assert.Equal(t, order.InProgress, testOrder.Status())
	assert.Equal(t, courier.Busy, stranger.Availability())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := context.Background()

	assignedCourier := testCourier(t, "Ana")
	testOrder := testPendingOrder(t)
	require.NoError(t, testOrder.Assign(assignedCourier.ID()))
	require.NoError(t, testOrder.Complete(assignedCourier.ID()))

	cmd, err := commands.NewCompleteOrderCommand(testOrder.ID(), assignedCourier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	courierRepo.On("Get", ctx, assignedCourier.ID()).Return(assignedCourier, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyCompleted)
}

func TestCompleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CompleteOrderCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewCompleteOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
