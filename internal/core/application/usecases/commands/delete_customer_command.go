package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrDeleteCustomerCommandIsNotConstructed is returned when a
// DeleteCustomerCommand was not created via NewDeleteCustomerCommand.
var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer account.
// The delete is guarded: a customer who still owns vehicles is refused.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete a customer.
func NewDeleteCustomerCommand(customerID kernel.AccountID) (DeleteCustomerCommand, error) {
	command := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCustomerID(customerID); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer identifier from the command.
func (c DeleteCustomerCommand) CustomerID() kernel.AccountID {
	return c.customerID
}

func (c *DeleteCustomerCommand) setCustomerID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}
