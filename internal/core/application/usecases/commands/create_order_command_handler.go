package commands

import (
	"context"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles opening new service orders. The vehicle
// and the assigned employee must both exist; the order starts pending and
// receives its sequence identifier from the store on insert.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for opening service orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the sequence
// identifier the store assigned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleChassis()); err != nil {
		return 0, err
	}

	assignee, err := uow.AccountRepository().Get(ctx, cmd.AssigneeID())
	if err != nil {
		return 0, err
	}
	if assignee.Role() != account.RoleEmployee {
		return 0, errs.NewObjectNotFoundError("employee", cmd.AssigneeID().String())
	}

	order, err := serviceorder.NewServiceOrder(
		cmd.ServiceType(), cmd.Description(), cmd.Price(), cmd.PaymentMethod(),
		cmd.VehicleChassis(), cmd.AssigneeID(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, order); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return order.ID(), nil
}
