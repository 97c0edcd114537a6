package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrUpdateCustomerCommandIsNotConstructed is returned when an
// UpdateCustomerCommand was not created via NewUpdateCustomerCommand.
var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to replace the mutable profile
// fields of an existing customer account.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.AccountID
	name       string
	email      string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer profile.
func NewUpdateCustomerCommand(
	customerID kernel.AccountID, name, email, address, phone string,
) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
		command.setAddress(address),
		command.setPhone(phone),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer identifier from the command.
func (c UpdateCustomerCommand) CustomerID() kernel.AccountID {
	return c.customerID
}

// Name returns the new customer name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new customer email.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Address returns the new customer address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// Phone returns the new customer phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

func (c *UpdateCustomerCommand) setCustomerID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *UpdateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *UpdateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
