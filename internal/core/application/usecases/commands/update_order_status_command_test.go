package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Cutting, actorID, actor.RoleStaff, false)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Cutting, cmd.NewStatus())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, actor.RoleStaff, cmd.Role())
	assert.False(t, cmd.Force())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_InvalidInput(t *testing.T) {
	t.Run("unknown_status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Unknown, kernel.NewUUID(), actor.RoleStaff, false)
		require.Error(t, err)
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Cutting, kernel.NewUUID(), actor.RoleUnknown, false)
		require.Error(t, err)
	})

	t.Run("invalid_actor_id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Cutting, kernel.UUID{}, actor.RoleStaff, false)
		require.Error(t, err)
	})
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
