package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new service order for a
// vehicle. The order starts in the pending status; its sequence identifier is
// assigned by the store on insert and returned by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(serviceorder.WashComplete,
//	    "full wash and wax", 150, serviceorder.Pix, 900123, employeeID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Created order %d", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	serviceType    serviceorder.ServiceType
	description    string
	price          float64
	paymentMethod  serviceorder.PaymentMethod
	vehicleChassis int64
	assigneeID     kernel.AccountID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new service order.
func NewCreateOrderCommand(
	serviceType serviceorder.ServiceType,
	description string,
	price float64,
	paymentMethod serviceorder.PaymentMethod,
	vehicleChassis int64,
	assigneeID kernel.AccountID,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setServiceType(serviceType),
		command.setDescription(description),
		command.setPrice(price),
		command.setPaymentMethod(paymentMethod),
		command.setVehicleChassis(vehicleChassis),
		command.setAssigneeID(assigneeID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ServiceType returns the kind of service ordered.
func (c CreateOrderCommand) ServiceType() serviceorder.ServiceType {
	return c.serviceType
}

// Description returns the free-text description from the command.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Price returns the agreed price from the command.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() serviceorder.PaymentMethod {
	return c.paymentMethod
}

// VehicleChassis returns the chassis number of the vehicle to service.
func (c CreateOrderCommand) VehicleChassis() int64 {
	return c.vehicleChassis
}

// AssigneeID returns the identifier of the employee assigned to the order.
func (c CreateOrderCommand) AssigneeID() kernel.AccountID {
	return c.assigneeID
}

func (c *CreateOrderCommand) setServiceType(serviceType serviceorder.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod serviceorder.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setVehicleChassis(chassis int64) error {
	if chassis <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicle chassis",
			fmt.Errorf("%d is not a positive chassis number", chassis))
	}

	c.vehicleChassis = chassis
	return nil
}

func (c *CreateOrderCommand) setAssigneeID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assigneeID = id
	return nil
}
