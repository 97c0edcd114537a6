package commands

import (
	"context"
)

// SetOrderPriceCommandHandler handles service-order re-pricing.
type SetOrderPriceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderPriceCommandHandler creates a handler for order re-pricing.
func NewSetOrderPriceCommandHandler(uowFactory OrderUoWFactory) SetOrderPriceCommandHandler {
	return SetOrderPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the re-pricing command. Terminal orders surface
// serviceorder.ErrOrderIsFinal from the aggregate.
func (h *SetOrderPriceCommandHandler) Handle(ctx context.Context, cmd SetOrderPriceCommand) error {
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

	orderRepo := uow.OrderRepository()

	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.SetPrice(cmd.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
