package services

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// Tariff constants for the pricing calculator. The values are part of the
// published price list and change only through a code release, so quotes for
// the same inputs are reproducible across restarts.
const (
	handEmbroideryBase    int64 = 800
	machineEmbroideryBase int64 = 500

	collarPlacementFee  int64 = 150
	sleevesPlacementFee int64 = 200
	chestPlacementFee   int64 = 250
	backPlacementFee    int64 = 300

	// Each thread color beyond the first included one.
	perExtraColorFee int64 = 50

	urgencySurcharge int64 = 500
)

// Quote is the itemized result of a pricing calculation. Total is always the
// exact sum of the four components, each of which may be zero.
type Quote struct {
	ItemsSubtotal  kernel.Money
	FabricCost     kernel.Money
	EmbroideryCost kernel.Money
	Urgency        kernel.Money
	Total          kernel.Money
}

// PricingCalculator is a domain service that computes the one-time total of an
// order from its line items, fabric selection, embroidery configuration and
// urgency flag.
//
// Business rules:
//   - Line items contribute unit price times quantity each
//   - Shop fabric contributes its unit price times quantity, customer-supplied
//     fabric contributes nothing
//   - Embroidery contributes a base fee by technique, a fee per placement and
//     a fee per thread color beyond the first
//   - Urgent orders carry a flat surcharge
//
// The calculator is pure: it holds no state and performs no I/O, so the same
// inputs always produce the same Quote. The total it produces is frozen into
// the order at creation time and never recomputed afterwards.
//
// Example usage:
//
//	calc := NewPricingCalculator()
//	quote, err := calc.Quote(items, fabric, embroidery, urgent)
//	if err != nil {
//	    // One of the inputs failed validation
//	    return
//	}
//	// quote.Total goes into order.NewOrder, quote.EmbroideryCost into
//	// embroidery.WithCost
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Quote calculates the itemized price for the given order composition.
//
// Every input is validated before it contributes to the total, so a Quote
// error always means an invalid input rather than an arithmetic problem.
func (c PricingCalculator) Quote(
	items []order.LineItem,
	fabric order.FabricSelection,
	embroidery order.Embroidery,
	urgent bool,
) (Quote, error) {
	var quote Quote

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Quote{}, err
		}
		quote.ItemsSubtotal = quote.ItemsSubtotal.Add(item.Subtotal())
	}

	if err := fabric.Validate(); err != nil {
		return Quote{}, err
	}
	quote.FabricCost = fabric.Cost()

	embroideryCost, err := c.EmbroideryCost(embroidery)
	if err != nil {
		return Quote{}, err
	}
	quote.EmbroideryCost = embroideryCost

	if urgent {
		quote.Urgency = mustMoney(urgencySurcharge)
	}

	quote.Total = quote.ItemsSubtotal.
		Add(quote.FabricCost).
		Add(quote.EmbroideryCost).
		Add(quote.Urgency)

	return quote, nil
}

// EmbroideryCost calculates the embroidery component of a quote on its own.
// It exists as a separate entry point because the cost is also stamped onto
// the embroidery sub-entity at order creation.
//
// The cost of a disabled embroidery is zero.
func (c PricingCalculator) EmbroideryCost(embroidery order.Embroidery) (kernel.Money, error) {
	if err := embroidery.Validate(); err != nil {
		return kernel.Zero(), err
	}

	if !embroidery.Enabled() {
		return kernel.Zero(), nil
	}

	cost := kernel.Zero()

	switch embroidery.Type() {
	case order.EmbroideryHand:
		cost = cost.Add(mustMoney(handEmbroideryBase))
	case order.EmbroideryMachine:
		cost = cost.Add(mustMoney(machineEmbroideryBase))
	}

	for _, placement := range embroidery.Placements() {
		switch placement {
		case order.PlacementCollar:
			cost = cost.Add(mustMoney(collarPlacementFee))
		case order.PlacementSleeves:
			cost = cost.Add(mustMoney(sleevesPlacementFee))
		case order.PlacementChest:
			cost = cost.Add(mustMoney(chestPlacementFee))
		case order.PlacementBack:
			cost = cost.Add(mustMoney(backPlacementFee))
		}
	}

	if extraColors := len(embroidery.Colors()) - 1; extraColors > 0 {
		cost = cost.Add(mustMoney(perExtraColorFee).MulQty(extraColors))
	}

	return cost, nil
}

// mustMoney wraps tariff constants, which are non-negative by construction.
func mustMoney(amount int64) kernel.Money {
	money, err := kernel.NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return money
}
