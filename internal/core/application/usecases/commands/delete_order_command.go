package commands

import (
	"errors"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a DeleteOrderCommand
// was not created via NewDeleteOrderCommand.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove a service order.
// Only pending and canceled orders may be removed.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete a service order.
func NewDeleteOrderCommand(orderID uint64) (DeleteOrderCommand, error) {
	command := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order identifier from the command.
func (c DeleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
