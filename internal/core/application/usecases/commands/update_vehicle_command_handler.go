package commands

import (
	"context"
)

// UpdateVehicleCommandHandler handles vehicle field updates.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle update command.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	vehicleEntity, err := vehicleRepo.Get(ctx, cmd.Chassis())
	if err != nil {
		return err
	}

	if err = vehicleEntity.UpdateDetails(
		cmd.Model(), cmd.Color(), cmd.Year(), cmd.Mileage(), cmd.Price(),
	); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
