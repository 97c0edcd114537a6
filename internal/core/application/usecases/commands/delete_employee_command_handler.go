package commands

import (
	"context"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/pkg/errs"
)

// DeleteEmployeeCommandHandler handles guarded employee deletion.
type DeleteEmployeeCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteEmployeeCommandHandler creates a handler for employee deletion.
func NewDeleteEmployeeCommandHandler(uowFactory UoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the employee deletion command. An employee with orders in
// progress or completed on record is refused with a HasDependentsError, so
// finished work never loses its assignee. Pending and canceled assignments do
// not block the delete.
func (h *DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
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

	employee, err := accountRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if employee.Role() != account.RoleEmployee {
		return errs.NewObjectNotFoundError("employee", cmd.EmployeeID().String())
	}

	orders, err := uow.OrderRepository().GetAllByAssignee(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	blocking := 0
	for _, order := range orders {
		if order.Status() == serviceorder.StatusInProgress || order.Status() == serviceorder.StatusCompleted {
			blocking++
		}
	}
	if blocking > 0 {
		return errs.NewHasDependentsError("employee", cmd.EmployeeID().String(), blocking)
	}

	if err = accountRepo.Delete(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
