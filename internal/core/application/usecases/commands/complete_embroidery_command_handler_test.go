package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

func TestNewCompleteEmbroideryCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCompleteEmbroideryCommand(orderID)
	require.NoError(t, err)
	require.Equal(t, orderID, cmd.OrderID())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewCompleteEmbroideryCommand(kernel.UUID{})
	require.Error(t, err)

	var zero commands.CompleteEmbroideryCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrCompleteEmbroideryCommandIsNotConstructed)
}

func TestCompleteEmbroideryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t, kernel.NewUUID())

	cmd, err := commands.NewCompleteEmbroideryCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteEmbroideryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.EmbroideryComplete, aggregate.Embroidery().Status())
	uow.AssertExpectations(t)
}
