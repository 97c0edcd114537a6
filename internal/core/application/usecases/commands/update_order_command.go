package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an
// UpdateOrderCommand was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the editable fields of
// a service order. Orders in a terminal status reject the edit.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       uint64
	serviceType   serviceorder.ServiceType
	description   string
	price         float64
	paymentMethod serviceorder.PaymentMethod

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update a service order.
func NewUpdateOrderCommand(
	orderID uint64,
	serviceType serviceorder.ServiceType,
	description string,
	price float64,
	paymentMethod serviceorder.PaymentMethod,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setServiceType(serviceType),
		command.setDescription(description),
		command.setPrice(price),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order identifier from the command.
func (c UpdateOrderCommand) OrderID() uint64 {
	return c.orderID
}

// ServiceType returns the new service type.
func (c UpdateOrderCommand) ServiceType() serviceorder.ServiceType {
	return c.serviceType
}

// Description returns the new description.
func (c UpdateOrderCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateOrderCommand) Price() float64 {
	return c.price
}

// PaymentMethod returns the new payment method.
func (c UpdateOrderCommand) PaymentMethod() serviceorder.PaymentMethod {
	return c.paymentMethod
}

func (c *UpdateOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setServiceType(serviceType serviceorder.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *UpdateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *UpdateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	c.price = price
	return nil
}

func (c *UpdateOrderCommand) setPaymentMethod(paymentMethod serviceorder.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
