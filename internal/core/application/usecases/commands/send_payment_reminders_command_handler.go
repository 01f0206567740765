package commands

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"atelier/internal/core/ports"
)

// SendPaymentRemindersCommandHandler publishes a reminder for every bill
// whose payment status is not yet Paid.
//
// The sweep is read-only: it never mutates the ledger. A failed publish for
// one bill is logged and does not stop the rest of the sweep.
type SendPaymentRemindersCommandHandler struct {
	uowFactory BillUoWFactory
	publisher  ports.NotificationPublisher
	logger     *zap.Logger
}

// NewSendPaymentRemindersCommandHandler creates a handler for reminder sweeps.
func NewSendPaymentRemindersCommandHandler(
	uowFactory BillUoWFactory,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) SendPaymentRemindersCommandHandler {
	return SendPaymentRemindersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the reminder sweep command.
func (h *SendPaymentRemindersCommandHandler) Handle(ctx context.Context, cmd SendPaymentRemindersCommand) error {
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

	outstanding, err := uow.BillRepository().GetAllOutstanding(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range outstanding {
		due := aggregate.Amount().Amount() - aggregate.AmountPaid().Amount()
		if err = h.publisher.Publish(ctx, ports.Notification{
			Kind:    ports.NotificationPaymentReminder,
			OrderID: aggregate.OrderID(),
			BillID:  aggregate.ID(),
			Detail:  strconv.FormatInt(due, 10),
		}); err != nil {
			h.logger.Warn("payment reminder publish failed",
				zap.String("bill_id", aggregate.ID().String()),
				zap.Error(err),
			)
		}
	}

	return nil
}
