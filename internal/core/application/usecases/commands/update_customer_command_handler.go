package commands

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/pkg/errs"
)

// UpdateCustomerCommandHandler handles customer profile updates.
type UpdateCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer profile
// updates.
func NewUpdateCustomerCommandHandler(uowFactory AccountUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command. An account found under the
// identifier but carrying a different role is reported as not found, so
// employee accounts cannot be edited through the customer surface.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customer, err := accountRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customer.Role() != account.RoleCustomer {
		return errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	if cmd.Email() != customer.Email() {
		if _, err = accountRepo.GetByEmail(ctx, cmd.Email()); err == nil {
			return errs.NewConflictError("email")
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = customer.UpdateProfile(cmd.Name(), cmd.Email(), cmd.Address(), cmd.Phone()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, customer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
