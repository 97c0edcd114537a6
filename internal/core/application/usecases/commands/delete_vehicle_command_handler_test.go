package commands_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteVehicleCommandHandler_Handle_BlockedByActiveOrders(t *testing.T) {
	// Arrange
	ctx := context.Background()
	chassis := int64(900123)
	cmd, err := commands.NewDeleteVehicleCommand(chassis)
	require.NoError(t, err)

	ownerID := mustAccountID(t, "1")
	assigneeID := mustAccountID(t, "7")
	vehicleEntity := newTestVehicle(t, chassis, ownerID)
	orders := []*serviceorder.ServiceOrder{
		newTestOrder(t, 1, serviceorder.StatusPending, chassis, assigneeID),
		newTestOrder(t, 2, serviceorder.StatusInProgress, chassis, assigneeID),
		newTestOrder(t, 3, serviceorder.StatusCompleted, chassis, assigneeID),
	}

	mockVehicleRepo := new(MockVehicleRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("Get", ctx, chassis).Return(vehicleEntity, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetAllByVehicle", ctx, chassis).Return(orders, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteVehicleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrHasDependents)

	var dependentsErr *errs.HasDependentsError
	require.ErrorAs(t, err, &dependentsErr)
	assert.Equal(t, 2, dependentsErr.Count, "only pending and in-progress orders block the delete")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_FinishedHistoryDoesNotBlock(t *testing.T) {
	// Arrange
	ctx := context.Background()
	chassis := int64(900123)
	cmd, err := commands.NewDeleteVehicleCommand(chassis)
	require.NoError(t, err)

	ownerID := mustAccountID(t, "1")
	assigneeID := mustAccountID(t, "7")
	vehicleEntity := newTestVehicle(t, chassis, ownerID)
	orders := []*serviceorder.ServiceOrder{
		newTestOrder(t, 1, serviceorder.StatusCompleted, chassis, assigneeID),
		newTestOrder(t, 2, serviceorder.StatusCanceled, chassis, assigneeID),
		newTestOrder(t, 3, serviceorder.StatusAwaitingPayment, chassis, assigneeID),
	}

	mockVehicleRepo := new(MockVehicleRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("Get", ctx, chassis).Return(vehicleEntity, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("GetAllByVehicle", ctx, chassis).Return(orders, nil).Once(),
		mockVehicleRepo.On("Delete", ctx, chassis).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteVehicleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}
