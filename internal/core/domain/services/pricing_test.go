package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, name string, quantity int, unitPrice int64) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(name, quantity, money(t, unitPrice))
	require.NoError(t, err)
	return item
}

func customerFabric(t *testing.T) order.FabricSelection {
	t.Helper()
	fabric, err := order.NewCustomerFabric("brought own linen")
	require.NoError(t, err)
	return fabric
}

func Test_PricingCalculator_Quote(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("sums_items_and_shop_fabric", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "kurta stitching", 1, 800)}
		fabric, err := order.NewShopFabric(kernel.NewUUID(), "cotton", money(t, 200), 2)
		require.NoError(t, err)

		quote, err := calc.Quote(items, fabric, order.DisabledEmbroidery(), false)

		require.NoError(t, err)
		assert.True(t, quote.ItemsSubtotal.IsEqual(money(t, 800)))
		assert.True(t, quote.FabricCost.IsEqual(money(t, 400)))
		assert.True(t, quote.EmbroideryCost.IsZero())
		assert.True(t, quote.Urgency.IsZero())
		assert.True(t, quote.Total.IsEqual(money(t, 1200)))
	})

	t.Run("customer_fabric_costs_nothing", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "blouse stitching", 2, 350)}

		quote, err := calc.Quote(items, customerFabric(t), order.DisabledEmbroidery(), false)

		require.NoError(t, err)
		assert.True(t, quote.FabricCost.IsZero())
		assert.True(t, quote.Total.IsEqual(money(t, 700)))
	})

	t.Run("urgent_order_carries_flat_surcharge", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "kurta stitching", 1, 800)}

		quote, err := calc.Quote(items, customerFabric(t), order.DisabledEmbroidery(), true)

		require.NoError(t, err)
		assert.True(t, quote.Urgency.IsEqual(money(t, 500)))
		assert.True(t, quote.Total.IsEqual(money(t, 1300)))
	})

	t.Run("embroidery_feeds_into_total", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "sherwani stitching", 1, 2000)}
		embroidery, err := order.NewEmbroidery(
			order.EmbroideryMachine,
			[]order.Placement{order.PlacementBack},
			"peacock",
			[]string{"gold"},
			"",
		)
		require.NoError(t, err)

		quote, err := calc.Quote(items, customerFabric(t), embroidery, false)

		require.NoError(t, err)
		assert.True(t, quote.EmbroideryCost.IsEqual(money(t, 800)))
		assert.True(t, quote.Total.IsEqual(money(t, 2800)))
	})

	t.Run("invalid_item_rejects_quote", func(t *testing.T) {
		_, err := calc.Quote([]order.LineItem{{}}, customerFabric(t), order.DisabledEmbroidery(), false)

		assert.Error(t, err)
	})

	t.Run("invalid_fabric_rejects_quote", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "kurta stitching", 1, 800)}

		_, err := calc.Quote(items, order.FabricSelection{}, order.DisabledEmbroidery(), false)

		assert.Error(t, err)
	})

	t.Run("same_inputs_same_quote", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "kurta stitching", 3, 450)}

		first, err := calc.Quote(items, customerFabric(t), order.DisabledEmbroidery(), true)
		require.NoError(t, err)
		second, err := calc.Quote(items, customerFabric(t), order.DisabledEmbroidery(), true)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func Test_PricingCalculator_EmbroideryCost(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("hand_collar_sleeves_three_colors", func(t *testing.T) {
		embroidery, err := order.NewEmbroidery(
			order.EmbroideryHand,
			[]order.Placement{order.PlacementCollar, order.PlacementSleeves},
			"floral vine",
			[]string{"red", "gold", "green"},
			"",
		)
		require.NoError(t, err)

		cost, err := calc.EmbroideryCost(embroidery)

		require.NoError(t, err)
		// 800 base + 150 collar + 200 sleeves + 2 extra colors at 50.
		assert.True(t, cost.IsEqual(money(t, 1250)))
	})

	t.Run("machine_base_is_cheaper", func(t *testing.T) {
		embroidery, err := order.NewEmbroidery(
			order.EmbroideryMachine,
			[]order.Placement{order.PlacementChest},
			"monogram",
			[]string{"navy"},
			"",
		)
		require.NoError(t, err)

		cost, err := calc.EmbroideryCost(embroidery)

		require.NoError(t, err)
		assert.True(t, cost.IsEqual(money(t, 750)))
	})

	t.Run("first_color_is_included", func(t *testing.T) {
		embroidery, err := order.NewEmbroidery(
			order.EmbroideryHand,
			[]order.Placement{order.PlacementBack},
			"paisley",
			[]string{"maroon"},
			"",
		)
		require.NoError(t, err)

		cost, err := calc.EmbroideryCost(embroidery)

		require.NoError(t, err)
		assert.True(t, cost.IsEqual(money(t, 1100)))
	})

	t.Run("disabled_embroidery_is_free", func(t *testing.T) {
		cost, err := calc.EmbroideryCost(order.DisabledEmbroidery())

		require.NoError(t, err)
		assert.True(t, cost.IsZero())
	})

	t.Run("unconstructed_embroidery_rejected", func(t *testing.T) {
		_, err := calc.EmbroideryCost(order.Embroidery{})

		assert.Error(t, err)
	})
}
