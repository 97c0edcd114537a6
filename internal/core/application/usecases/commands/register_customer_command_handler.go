package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/secure"
)

// RegisterCustomerCommandHandler handles customer registration.
// Hashes the password, checks identifier and email uniqueness, and persists
// the base account row together with its customer extension in one
// transaction.
type RegisterCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration.
func NewRegisterCustomerCommandHandler(uowFactory AccountUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// The uniqueness pre-checks and the composite insert run inside the same
// transaction, so a failure on either row leaves no partial account behind.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	if _, err := accountRepo.Get(ctx, cmd.CustomerID()); err == nil {
		return errs.NewConflictError("id")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if _, err := accountRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewConflictError("email")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	passwordHash, err := secure.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	customer, err := account.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Password(), passwordHash, cmd.Address(), cmd.Phone(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, customer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
