package commands

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrSetOrderPriceCommandIsNotConstructed is returned when a
// SetOrderPriceCommand was not created via NewSetOrderPriceCommand.
var ErrSetOrderPriceCommandIsNotConstructed = errors.New(
	"SetOrderPriceCommand must be created via NewSetOrderPriceCommand constructor",
)

// SetOrderPriceCommand represents a request to re-price a service order
// without touching its other fields.
type SetOrderPriceCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	price   float64

	guard guard.ConstructorGuard
}

// NewSetOrderPriceCommand creates a command to set a service order's price.
func NewSetOrderPriceCommand(orderID uint64, price float64) (SetOrderPriceCommand, error) {
	command := SetOrderPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPrice(price),
	); err != nil {
		return SetOrderPriceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPriceCommandIsNotConstructed)
}

// OrderID returns the order identifier from the command.
func (c SetOrderPriceCommand) OrderID() uint64 {
	return c.orderID
}

// Price returns the new price.
func (c SetOrderPriceCommand) Price() float64 {
	return c.price
}

func (c *SetOrderPriceCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderPriceCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	c.price = price
	return nil
}
