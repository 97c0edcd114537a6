package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrDeleteEmployeeCommandIsNotConstructed is returned when a
// DeleteEmployeeCommand was not created via NewDeleteEmployeeCommand.
var ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
	"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
)

// DeleteEmployeeCommand represents a request to remove an employee account.
// The delete is guarded: an employee with in-progress or completed orders on
// record is refused.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.AccountID

	guard guard.ConstructorGuard
}

// NewDeleteEmployeeCommand creates a command to delete an employee.
func NewDeleteEmployeeCommand(employeeID kernel.AccountID) (DeleteEmployeeCommand, error) {
	command := DeleteEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEmployeeID(employeeID); err != nil {
		return DeleteEmployeeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the employee identifier from the command.
func (c DeleteEmployeeCommand) EmployeeID() kernel.AccountID {
	return c.employeeID
}

func (c *DeleteEmployeeCommand) setEmployeeID(id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}
