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

func TestNewGenerateBillCommand(t *testing.T) {
	billID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewGenerateBillCommand(billID, orderID, bill.MethodCash)
	require.NoError(t, err)
	require.Equal(t, billID, cmd.BillID())
	require.Equal(t, orderID, cmd.OrderID())
	require.Equal(t, bill.MethodCash, cmd.Method())

	_, err = commands.NewGenerateBillCommand(kernel.UUID{}, orderID, bill.MethodCash)
	require.Error(t, err)

	_, err = commands.NewGenerateBillCommand(billID, orderID, bill.MethodUnknown)
	require.Error(t, err)

	var zero commands.GenerateBillCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrGenerateBillCommandIsNotConstructed)
}

func TestGenerateBillCommandHandler_Handle_FirstGeneration(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, kernel.NewUUID())
	billID := kernel.NewUUID()

	cmd, err := commands.NewGenerateBillCommand(billID, aggregate.ID(), bill.MethodCash)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	billRepo := new(MockBillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("BillRepository").Return(billRepo).Once(),
		billRepo.On("GetByOrder", ctx, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID().String())).Once(),
		billRepo.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Run(func(args mock.Arguments) {
			added := args.Get(1).(*bill.Bill)
			require.True(t, added.ID().IsEqual(billID))
			require.True(t, added.Amount().IsEqual(aggregate.Total()))
			require.Equal(t, bill.StatusUnpaid, added.Status())
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationBillGenerated && n.BillID.IsEqual(billID)
	})).Return(nil).Once()

	gateway := new(MockPaymentGateway)

	h := commands.NewGenerateBillCommandHandler(factory, gateway, publisher, zap.NewNop())
	require.NoError(t, h.Handle(ctx, cmd))

	billRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	gateway.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateBillCommandHandler_Handle_GatewayMethodOpensSession(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, kernel.NewUUID())
	billID := kernel.NewUUID()

	cmd, err := commands.NewGenerateBillCommand(billID, aggregate.ID(), bill.MethodGateway)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("CreateSession", ctx, billID, aggregate.Total()).
		Return(ports.PaymentSession{ExternalOrderID: "order_J7x", CheckoutURL: "https://gw.test/J7x"}, nil).Once()

	billRepo := new(MockBillRepository)
	billRepo.On("GetByOrder", ctx, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID().String())).Once()
	billRepo.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Run(func(args mock.Arguments) {
		added := args.Get(1).(*bill.Bill)
		require.Equal(t, "order_J7x", added.ExternalOrderID())
		require.Equal(t, "https://gw.test/J7x", added.CheckoutURL())
	}).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewGenerateBillCommandHandler(factory, gateway, publisher, zap.NewNop())
	require.NoError(t, h.Handle(ctx, cmd))

	gateway.AssertExpectations(t)
	billRepo.AssertExpectations(t)
}

func TestGenerateBillCommandHandler_Handle_GatewayUnavailable(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, kernel.NewUUID())

	cmd, err := commands.NewGenerateBillCommand(kernel.NewUUID(), aggregate.ID(), bill.MethodGateway)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("CreateSession", ctx, mock.Anything, mock.Anything).
		Return(ports.PaymentSession{}, errs.NewExternalUnavailableError("payment gateway", nil)).Once()

	billRepo := new(MockBillRepository)
	billRepo.On("GetByOrder", ctx, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID().String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateBillCommandHandler(factory, gateway, new(MockNotificationPublisher), zap.NewNop())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrExternalUnavailable)

	billRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGenerateBillCommandHandler_Handle_SecondGenerationIsNoOp(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, kernel.NewUUID())
	existing := testBill(t, aggregate.ID(), 1200)

	cmd, err := commands.NewGenerateBillCommand(kernel.NewUUID(), aggregate.ID(), bill.MethodGateway)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	billRepo := new(MockBillRepository)
	billRepo.On("GetByOrder", ctx, aggregate.ID()).Return(existing, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewGenerateBillCommandHandler(factory, new(MockPaymentGateway), publisher, zap.NewNop())
	require.NoError(t, h.Handle(ctx, cmd))

	billRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGenerateBillCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewGenerateBillCommand(kernel.NewUUID(), orderID, bill.MethodCash)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderBillUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGenerateBillCommandHandler(factory, new(MockPaymentGateway), new(MockNotificationPublisher), zap.NewNop())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
