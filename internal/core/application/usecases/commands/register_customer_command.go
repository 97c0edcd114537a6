package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrRegisterCustomerCommandIsNotConstructed is returned when a
// RegisterCustomerCommand was not created via NewRegisterCustomerCommand.
var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer
// account. The identifier is externally assigned: customers bring their own
// numeric token.
//
// Example:
//
//	id, _ := kernel.AccountIDFromString("42")
//	cmd, err := NewRegisterCustomerCommand(id, "Maria Silva", "maria@example.com",
//	    "secret1", "Rua das Flores 10", "11987654321")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register customer: %w", err)
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.AccountID
	name       string
	email      string
	password   string
	address    string
	phone      string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// Presence of every field is checked here; format rules are enforced by the
// account aggregate in the handler.
func NewRegisterCustomerCommand(
	customerID kernel.AccountID, name, email, password, address, phone string,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
		command.setAddress(address),
		command.setPhone(phone),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the externally assigned customer identifier.
func (c RegisterCustomerCommand) CustomerID() kernel.AccountID {
	return c.customerID
}

// Name returns the customer name from the command.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer email from the command.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Password returns the plaintext password from the command.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

// Address returns the customer address from the command.
func (c RegisterCustomerCommand) Address() string {
	return c.address
}

// Phone returns the customer phone number from the command.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterCustomerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *RegisterCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
