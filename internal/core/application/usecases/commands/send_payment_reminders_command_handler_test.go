package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

func TestNewSendPaymentRemindersCommand(t *testing.T) {
	cmd := commands.NewSendPaymentRemindersCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.SendPaymentRemindersCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrSendPaymentRemindersCommandIsNotConstructed)
}

func TestSendPaymentRemindersCommandHandler_Handle_PublishesPerOutstandingBill(t *testing.T) {
	ctx := t.Context()

	unpaid := testBill(t, kernel.NewUUID(), 1200)

	partial := testBill(t, kernel.NewUUID(), 2000)
	payment, err := bill.NewPayment(kernel.NewUUID(), mustMoney(t, 500), bill.MethodCash, "", false)
	require.NoError(t, err)
	require.NoError(t, partial.RecordPayment(payment))

	repo := new(MockBillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillRepository").Return(repo).Once(),
		repo.On("GetAllOutstanding", ctx).Return([]*bill.Bill{unpaid, partial}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, ports.Notification{
		Kind:    ports.NotificationPaymentReminder,
		OrderID: unpaid.OrderID(),
		BillID:  unpaid.ID(),
		Detail:  "1200",
	}).Return(nil).Once()
	publisher.On("Publish", ctx, ports.Notification{
		Kind:    ports.NotificationPaymentReminder,
		OrderID: partial.OrderID(),
		BillID:  partial.ID(),
		Detail:  "1500",
	}).Return(nil).Once()

	h := commands.NewSendPaymentRemindersCommandHandler(factory, publisher, zap.NewNop())
	cmd := commands.NewSendPaymentRemindersCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	publisher.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSendPaymentRemindersCommandHandler_Handle_NothingOutstanding(t *testing.T) {
	ctx := t.Context()

	repo := new(MockBillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillRepository").Return(repo).Once(),
		repo.On("GetAllOutstanding", ctx).Return([]*bill.Bill{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewSendPaymentRemindersCommandHandler(factory, publisher, zap.NewNop())
	cmd := commands.NewSendPaymentRemindersCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSendPaymentRemindersCommandHandler_Handle_RepositoryFailure(t *testing.T) {
	ctx := t.Context()

	repo := new(MockBillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillRepository").Return(repo).Once(),
		repo.On("GetAllOutstanding", ctx).
			Return(nil, errs.NewExternalUnavailableError("database", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewSendPaymentRemindersCommandHandler(factory, publisher, zap.NewNop())
	cmd := commands.NewSendPaymentRemindersCommand()
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrExternalUnavailable)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
