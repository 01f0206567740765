package commands

import (
	"context"

	"go.uber.org/zap"

	"atelier/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
//
// All transition, role and embroidery-gate rules live inside the order
// aggregate; the handler loads, delegates, persists and notifies. Forced
// overrides go through the aggregate's audited override path.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	logger     *zap.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if cmd.Force() {
		err = aggregate.ForceTransition(cmd.NewStatus(), cmd.ActorID(), cmd.Role())
	} else {
		err = aggregate.Advance(cmd.NewStatus(), cmd.ActorID(), cmd.Role())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationOrderStatusChanged,
		OrderID: aggregate.ID(),
		Detail:  aggregate.Status().String(),
	}); err != nil {
		h.logger.Warn("notification publish failed",
			zap.String("order_id", aggregate.ID().String()),
			zap.Error(err),
		)
	}

	return nil
}
