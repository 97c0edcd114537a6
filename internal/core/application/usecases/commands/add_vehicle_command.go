package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrAddVehicleCommandIsNotConstructed is returned when an AddVehicleCommand
// was not created via NewAddVehicleCommand.
var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand represents a request to attach a new vehicle to a
// customer. The chassis number is externally supplied and becomes the
// vehicle's identifier.
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	chassis    int64
	model      string
	color      string
	year       int
	mileage    float64
	price      float64
	customerID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a command to register a new vehicle.
// Range rules for year, mileage, and price are enforced by the vehicle
// aggregate in the handler.
func NewAddVehicleCommand(
	chassis int64, model, color string, year int, mileage, price float64, customerID kernel.AccountID,
) (AddVehicleCommand, error) {
	command := AddVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChassis(chassis),
		command.setModel(model),
		command.setColor(color),
		command.setCustomerID(customerID),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	command.year = year
	command.mileage = mileage
	command.price = price

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Chassis returns the chassis number from the command.
func (c AddVehicleCommand) Chassis() int64 {
	return c.chassis
}

// Model returns the vehicle model from the command.
func (c AddVehicleCommand) Model() string {
	return c.model
}

// Color returns the vehicle color from the command.
func (c AddVehicleCommand) Color() string {
	return c.color
}

// Year returns the manufacture year from the command.
func (c AddVehicleCommand) Year() int {
	return c.year
}

// Mileage returns the recorded mileage from the command.
func (c AddVehicleCommand) Mileage() float64 {
	return c.mileage
}

// Price returns the appraised price from the command.
func (c AddVehicleCommand) Price() float64 {
	return c.price
}

// CustomerID returns the owning customer's identifier.
func (c AddVehicleCommand) CustomerID() kernel.AccountID {
	return c.customerID
}

func (c *AddVehicleCommand) setChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}

	c.chassis = chassis
	return nil
}

func (c *AddVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *AddVehicleCommand) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}

	c.color = color
	return nil
}

func (c *AddVehicleCommand) setCustomerID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}
