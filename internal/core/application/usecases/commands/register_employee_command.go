package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrRegisterEmployeeCommandIsNotConstructed is returned when a
// RegisterEmployeeCommand was not created via NewRegisterEmployeeCommand.
var ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
	"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
)

// RegisterEmployeeCommand represents a request to register a new employee
// account. Unlike customers, employees do not bring an identifier: the
// command generates a UUID, readable through EmployeeID after construction.
type RegisterEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.AccountID
	name       string
	email      string
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterEmployeeCommand creates a command to register a new employee.
// Automatically generates a unique identifier for the account.
func NewRegisterEmployeeCommand(name, email, password string) (RegisterEmployeeCommand, error) {
	command := RegisterEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmployeeID(kernel.NewAccountID()),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the generated employee identifier.
func (c RegisterEmployeeCommand) EmployeeID() kernel.AccountID {
	return c.employeeID
}

// Name returns the employee name from the command.
func (c RegisterEmployeeCommand) Name() string {
	return c.name
}

// Email returns the employee email from the command.
func (c RegisterEmployeeCommand) Email() string {
	return c.email
}

// Password returns the plaintext password from the command.
func (c RegisterEmployeeCommand) Password() string {
	return c.password
}

func (c *RegisterEmployeeCommand) setEmployeeID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *RegisterEmployeeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterEmployeeCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterEmployeeCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
