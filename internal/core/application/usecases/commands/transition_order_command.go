package commands

import (
	"errors"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrTransitionOrderCommandIsNotConstructed is returned when a
// TransitionOrderCommand was not created via NewTransitionOrderCommand.
var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move a service order to a
// new lifecycle status. Whether the move is legal is decided by the status
// state machine when the handler applies it.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	to      serviceorder.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition a service order.
func NewTransitionOrderCommand(orderID uint64, to serviceorder.Status) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTo(to),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order identifier from the command.
func (c TransitionOrderCommand) OrderID() uint64 {
	return c.orderID
}

// To returns the requested target status.
func (c TransitionOrderCommand) To() serviceorder.Status {
	return c.to
}

func (c *TransitionOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTo(to serviceorder.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}
