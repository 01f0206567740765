package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed indicates the LineItem was not created
	// through NewLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a value object describing one garment or service on the order:
// a name, a unit price frozen at creation, and a quantity.
type LineItem struct {
	// name describes the garment or service
	name string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the per-unit price frozen at order creation
	unitPrice kernel.Money

	// guard ensures the value was created via the constructor
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with validation.
//
// Parameters:
//   - name: garment or service description (must not be empty)
//   - quantity: units ordered (must be greater than 0)
//   - unitPrice: per-unit price
func NewLineItem(name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the value was created via the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the garment or service description.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the frozen per-unit price.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MulQty(i.quantity)
}
