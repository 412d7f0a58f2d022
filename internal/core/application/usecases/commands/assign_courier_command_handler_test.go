package commands_test

import (
	"context"
	"testing"
	"time"

	"appcenar/internal/core/application/usecases/commands"
	"appcenar/internal/core/domain/model/courier"
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza", testMoney(t, "100"), "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item},
		testMoney(t, "100"), testMoney(t, "18"), testMoney(t, "118"),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func testCourier(t *testing.T, name string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name)
	require.NoError(t, err)
	return c
}

func TestAssignCourierCommandHandler_Handle_SpecificOrder(t *testing.T) {
	ctx := context.Background()

	testOrder := testPendingOrder(t)
	freeCourier := testCourier(t, "Ana")

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("GetOneAvailable", ctx).Return(freeCourier, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Pending).Return(nil).Once(),
		courierRepo.On("Update", ctx, freeCourier).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
	assert.True(t, testOrder.Courier().IsEqual(freeCourier.ID()))
	assert.Equal(t, courier.Busy, freeCourier.Availability())

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_OldestPending(t *testing.T) {
	ctx := context.Background()

	testOrder := testPendingOrder(t)
	freeCourier := testCourier(t, "Ana")
	cmd := commands.NewAssignOldestPendingCommand()

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("GetOldestPending", ctx).Return(testOrder, nil).Once()
	courierRepo.On("GetOneAvailable", ctx).Return(freeCourier, nil).Once()
	orderRepo.On("UpdateInStatus", ctx, testOrder, order.Pending).Return(nil).Once()
	courierRepo.On("Update", ctx, freeCourier).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, order.InProgress, testOrder.Status())
}

func TestAssignCourierCommandHandler_Handle_NoPendingOrder(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewAssignOldestPendingCommand()

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("GetOldestPending", ctx).Return(nil, errs.NewObjectNotFoundError("order", nil)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingOrder)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignCourierCommandHandler_Handle_NoCourierAvailable(t *testing.T) {
	ctx := context.Background()

	testOrder := testPendingOrder(t)
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	courierRepo.On("GetOneAvailable", ctx).Return(nil, errs.NewObjectNotFoundError("courier", nil)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoCourierAvailable)
	assert.Equal(t, order.Pending, testOrder.Status(), "order stays pending")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignCourierCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := context.Background()

	testOrder := testPendingOrder(t)
	require.NoError(t, testOrder.Assign(kernel.NewUUID()))

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	courierRepo.AssertNotCalled(t, "GetOneAvailable", ctx)
}

func TestAssignCourierCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AssignCourierCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignCourierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
