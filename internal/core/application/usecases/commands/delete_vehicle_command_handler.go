package commands

import (
	"context"
	"strconv"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// DeleteVehicleCommandHandler handles guarded vehicle deletion.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle deletion command. A vehicle with any order
// still pending or in progress is refused with a HasDependentsError carrying
// the count of blocking orders. Finished order history does not block the
// delete.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	if _, err := vehicleRepo.Get(ctx, cmd.Chassis()); err != nil {
		return err
	}

	orders, err := uow.OrderRepository().GetAllByVehicle(ctx, cmd.Chassis())
	if err != nil {
		return err
	}

	blocking := 0
	for _, order := range orders {
		if order.Status() == serviceorder.StatusPending || order.Status() == serviceorder.StatusInProgress {
			blocking++
		}
	}
	if blocking > 0 {
		return errs.NewHasDependentsError("vehicle", strconv.FormatInt(cmd.Chassis(), 10), blocking)
	}

	if err = vehicleRepo.Delete(ctx, cmd.Chassis()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
