package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

func TestNewRefundPaymentCommand(t *testing.T) {
	billID := kernel.NewUUID()
	paymentID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	cmd, err := commands.NewRefundPaymentCommand(billID, paymentID, adminID, actor.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, billID, cmd.BillID())
	require.Equal(t, paymentID, cmd.PaymentID())
	require.Equal(t, adminID, cmd.ActorID())
	require.Equal(t, actor.RoleAdmin, cmd.Role())

	_, err = commands.NewRefundPaymentCommand(billID, paymentID, adminID, actor.RoleUnknown)
	require.Error(t, err)

	var zero commands.RefundPaymentCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrRefundPaymentCommandIsNotConstructed)
}

func TestRefundPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := testBill(t, orderID, 1200)

	payment, err := bill.NewPayment(kernel.NewUUID(), mustMoney(t, 700), bill.MethodCash, "", false)
	require.NoError(t, err)
	require.NoError(t, aggregate.RecordPayment(payment))

	cmd, err := commands.NewRefundPaymentCommand(
		aggregate.ID(), payment.ID(), kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	repo := new(MockBillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BillRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockBillSummaryCache)
	cache.On("Invalidate", orderID).Once()

	h := commands.NewRefundPaymentCommandHandler(factory, cache, zap.NewNop())
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, aggregate.AmountPaid().IsZero())
	require.Equal(t, bill.StatusUnpaid, aggregate.Status())
	cache.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_NonAdminRejected(t *testing.T) {
	cmd, err := commands.NewRefundPaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), actor.RoleStaff)
	require.NoError(t, err)

	factory := new(MockBillUoWFactory)
	h := commands.NewRefundPaymentCommandHandler(factory, new(MockBillSummaryCache), zap.NewNop())

	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrSecurityViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestRefundPaymentCommandHandler_Handle_UnknownPayment(t *testing.T) {
	ctx := t.Context()
	aggregate := testBill(t, kernel.NewUUID(), 1200)

	cmd, err := commands.NewRefundPaymentCommand(
		aggregate.ID(), kernel.NewUUID(), kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	repo := new(MockBillRepository)
	repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BillRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory, new(MockBillSummaryCache), zap.NewNop())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
