package commands

import (
	"context"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/pkg/errs"
)

// DeleteCustomerCommandHandler handles guarded customer deletion. The guard
// read and the composite delete run in the same transaction under the
// single-writer assumption.
type DeleteCustomerCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory VehicleUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer deletion command. A customer who still owns
// vehicles is refused with a HasDependentsError carrying the vehicle count.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	vehicleCount, err := uow.VehicleRepository().CountByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if vehicleCount > 0 {
		return errs.NewHasDependentsError("customer", cmd.CustomerID().String(), vehicleCount)
	}

	if err = accountRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
