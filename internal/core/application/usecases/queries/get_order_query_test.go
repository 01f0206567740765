package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
)

func Test_NewGetOrderQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		var query queries.GetOrderQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}
