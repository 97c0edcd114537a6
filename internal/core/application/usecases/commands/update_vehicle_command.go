package commands

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrUpdateVehicleCommandIsNotConstructed is returned when an
// UpdateVehicleCommand was not created via NewUpdateVehicleCommand.
var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to replace the mutable fields of
// an existing vehicle. The chassis number and owner never change.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	chassis int64
	model   string
	color   string
	year    int
	mileage float64
	price   float64

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle.
func NewUpdateVehicleCommand(
	chassis int64, model, color string, year int, mileage, price float64,
) (UpdateVehicleCommand, error) {
	command := UpdateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChassis(chassis),
		command.setModel(model),
		command.setColor(color),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	command.year = year
	command.mileage = mileage
	command.price = price

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// Chassis returns the chassis number from the command.
func (c UpdateVehicleCommand) Chassis() int64 {
	return c.chassis
}

// Model returns the new vehicle model.
func (c UpdateVehicleCommand) Model() string {
	return c.model
}

// Color returns the new vehicle color.
func (c UpdateVehicleCommand) Color() string {
	return c.color
}

// Year returns the new manufacture year.
func (c UpdateVehicleCommand) Year() int {
	return c.year
}

// Mileage returns the new mileage.
func (c UpdateVehicleCommand) Mileage() float64 {
	return c.mileage
}

// Price returns the new price.
func (c UpdateVehicleCommand) Price() float64 {
	return c.price
}

func (c *UpdateVehicleCommand) setChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}

	c.chassis = chassis
	return nil
}

func (c *UpdateVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *UpdateVehicleCommand) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}

	c.color = color
	return nil
}
