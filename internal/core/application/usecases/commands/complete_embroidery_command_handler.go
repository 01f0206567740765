package commands

import (
	"context"
)

// CompleteEmbroideryCommandHandler marks an order's embroidery work done.
// Completing already-complete or disabled embroidery is a no-op; completion
// on a delivered or cancelled order is rejected by the aggregate.
type CompleteEmbroideryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteEmbroideryCommandHandler creates a handler for embroidery completion.
func NewCompleteEmbroideryCommandHandler(uowFactory OrderUoWFactory) CompleteEmbroideryCommandHandler {
	return CompleteEmbroideryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the embroidery completion command.
func (h *CompleteEmbroideryCommandHandler) Handle(ctx context.Context, cmd CompleteEmbroideryCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteEmbroidery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
