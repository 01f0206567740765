package commands

import (
	"context"

	"go.uber.org/zap"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/pkg/errs"
)

// RefundPaymentCommandHandler removes a payment from a bill.
//
// Admin only. Removal and the recompute of the derived ledger fields happen
// in one transaction; the cached bill summary is dropped after commit.
type RefundPaymentCommandHandler struct {
	uowFactory BillUoWFactory
	cache      BillSummaryCache
	logger     *zap.Logger
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(
	uowFactory BillUoWFactory,
	cache BillSummaryCache,
	logger *zap.Logger,
) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the refund command.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Role() != actor.RoleAdmin {
		h.logger.Error("refund attempted without admin role",
			zap.String("bill_id", cmd.BillID().String()),
			zap.String("actor_id", cmd.ActorID().String()),
			zap.String("role", cmd.Role().String()),
		)
		return errs.NewSecurityError("refund payment", "actor is not an admin")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billRepo := uow.BillRepository()
	aggregate, err := billRepo.Get(ctx, cmd.BillID())
	if err != nil {
		return err
	}

	if err = aggregate.RemovePayment(cmd.PaymentID()); err != nil {
		return err
	}

	if err = billRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(aggregate.OrderID())

	return nil
}
