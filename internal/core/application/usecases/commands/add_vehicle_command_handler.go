package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/pkg/errs"
)

// AddVehicleCommandHandler handles vehicle registration. A vehicle can only
// be attached to an existing customer account, and its chassis number must
// not already be registered.
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewAddVehicleCommandHandler creates a handler for vehicle registration.
func NewAddVehicleCommandHandler(uowFactory VehicleUoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
func (h *AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) error {
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

	owner, err := uow.AccountRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if owner.Role() != account.RoleCustomer {
		return errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	vehicleRepo := uow.VehicleRepository()

	if _, err = vehicleRepo.Get(ctx, cmd.Chassis()); err == nil {
		return errs.NewConflictError("chassis")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	vehicleEntity, err := vehicle.NewVehicle(
		cmd.Chassis(), cmd.Model(), cmd.Color(), cmd.Year(), cmd.Mileage(), cmd.Price(), cmd.CustomerID(),
	)
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
