package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/secure"
)

// RegisterEmployeeCommandHandler handles employee registration. The same
// composite write discipline as customer registration applies: base row plus
// employee extension in one transaction.
type RegisterEmployeeCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterEmployeeCommandHandler creates a handler for employee
// registration.
func NewRegisterEmployeeCommandHandler(uowFactory AccountUoWFactory) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee registration command.
func (h *RegisterEmployeeCommandHandler) Handle(ctx context.Context, cmd RegisterEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	if _, err := accountRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewConflictError("email")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	passwordHash, err := secure.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	employee, err := account.NewEmployee(
		cmd.EmployeeID(), cmd.Name(), cmd.Email(), cmd.Password(), passwordHash,
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, employee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
