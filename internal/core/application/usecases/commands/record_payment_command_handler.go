package commands

import (
	"context"

	"go.uber.org/zap"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
)

// RecordPaymentCommandHandler appends payments to the billing ledger.
//
// Gateway payments are verified against the callback signature before the
// transaction opens; a mismatch stops the command with no state touched.
// Replaying a verified callback whose external payment id is already on the
// ledger commits nothing new and publishes nothing; the id of the previously
// recorded payment is returned so callers can answer with the existing state.
// Overpayment is accepted and logged.
type RecordPaymentCommandHandler struct {
	uowFactory BillUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.NotificationPublisher
	cache      BillSummaryCache
	logger     *zap.Logger
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(
	uowFactory BillUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.NotificationPublisher,
	cache BillSummaryCache,
	logger *zap.Logger,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the payment recording command. It returns the id of the
// payment now on the ledger, which is the command's payment id except on a
// callback replay.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	verified := false
	if cmd.Method().RequiresVerification() {
		if err := h.gateway.Verify(ports.GatewayCallback{
			ExternalOrderID:   cmd.ExternalOrderID(),
			ExternalPaymentID: cmd.ExternalPaymentID(),
			Signature:         cmd.Signature(),
		}); err != nil {
			h.logger.Error("gateway callback verification failed",
				zap.String("bill_id", cmd.BillID().String()),
				zap.String("external_order_id", cmd.ExternalOrderID()),
				zap.String("external_payment_id", cmd.ExternalPaymentID()),
				zap.Error(err),
			)
			return kernel.UUID{}, err
		}
		verified = true
	}

	amount, err := kernel.NewMoney(cmd.Amount())
	if err != nil {
		return kernel.UUID{}, err
	}

	payment, err := bill.NewPayment(cmd.PaymentID(), amount, cmd.Method(), cmd.ExternalPaymentID(), verified)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	billRepo := uow.BillRepository()
	aggregate, err := billRepo.Get(ctx, cmd.BillID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if verified {
		if existing, ok := aggregate.PaymentByExternalRef(cmd.ExternalPaymentID()); ok {
			// Callback replay; the ledger already holds this payment.
			return existing.ID(), uow.Commit(ctx)
		}
	}

	if err = aggregate.RecordPayment(payment); err != nil {
		return kernel.UUID{}, err
	}

	if aggregate.Overpaid() {
		h.logger.Warn("bill overpaid",
			zap.String("bill_id", aggregate.ID().String()),
			zap.String("amount", aggregate.Amount().String()),
			zap.String("amount_paid", aggregate.AmountPaid().String()),
		)
	}

	if err = billRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.cache.Invalidate(aggregate.OrderID())

	if err = h.publisher.Publish(ctx, ports.Notification{
		Kind:    ports.NotificationPaymentRecorded,
		OrderID: aggregate.OrderID(),
		BillID:  aggregate.ID(),
		Detail:  aggregate.Status().String(),
	}); err != nil {
		h.logger.Warn("notification publish failed",
			zap.String("bill_id", aggregate.ID().String()),
			zap.Error(err),
		)
	}

	return payment.ID(), nil
}
