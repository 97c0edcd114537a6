package commands

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrDeleteVehicleCommandIsNotConstructed is returned when a
// DeleteVehicleCommand was not created via NewDeleteVehicleCommand.
var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle. The delete
// is guarded: a vehicle with pending or in-progress orders is refused.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	chassis int64

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to delete a vehicle.
func NewDeleteVehicleCommand(chassis int64) (DeleteVehicleCommand, error) {
	command := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChassis(chassis); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// Chassis returns the chassis number from the command.
func (c DeleteVehicleCommand) Chassis() int64 {
	return c.chassis
}

func (c *DeleteVehicleCommand) setChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}

	c.chassis = chassis
	return nil
}
