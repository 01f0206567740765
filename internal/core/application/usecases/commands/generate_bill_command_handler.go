package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// GenerateBillCommandHandler opens the bill for an order.
//
// The amount is copied from the order total at generation time and never
// changes afterwards. When the customer intends to pay online, a checkout
// session is opened at the gateway before the bill is persisted, so the
// external order id the gateway will later reference in its callback is on
// the bill from the start. A repeated request for an already-billed order is
// a no-op; the bill generated notification goes out only on first creation.
type GenerateBillCommandHandler struct {
	uowFactory OrderBillUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.NotificationPublisher
	logger     *zap.Logger
}

// NewGenerateBillCommandHandler creates a handler for bill generation.
func NewGenerateBillCommandHandler(
	uowFactory OrderBillUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) GenerateBillCommandHandler {
	return GenerateBillCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the bill generation command.
func (h *GenerateBillCommandHandler) Handle(ctx context.Context, cmd GenerateBillCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	billRepo := uow.BillRepository()
	_, err = billRepo.GetByOrder(ctx, cmd.OrderID())
	if err == nil {
		// Already billed; idempotent no-op.
		return uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newBill, err := bill.NewBill(cmd.BillID(), aggregate.ID(), aggregate.Total())
	if err != nil {
		return err
	}

	if cmd.Method().RequiresVerification() {
		session, sessionErr := h.gateway.CreateSession(ctx, newBill.ID(), newBill.Amount())
		if sessionErr != nil {
			return sessionErr
		}
		if err = newBill.AttachSession(session.ExternalOrderID, session.CheckoutURL); err != nil {
			return err
		}
	}

	if err = billRepo.Add(ctx, newBill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationBillGenerated,
		OrderID: aggregate.ID(),
		BillID:  newBill.ID(),
		Detail:  newBill.Amount().String(),
	}); err != nil {
		h.logger.Warn("notification publish failed",
			zap.String("bill_id", newBill.ID().String()),
			zap.Error(err),
		)
	}

	return nil
}
