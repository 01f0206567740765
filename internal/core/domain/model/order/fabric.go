package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrFabricSelectionIsNotConstructed indicates the FabricSelection was
	// not created through NewShopFabric or NewCustomerFabric.
	ErrFabricSelectionIsNotConstructed = errors.New(
		"FabricSelection must be created via NewShopFabric or NewCustomerFabric",
	)
)

// FabricSource distinguishes shop-supplied fabric from customer-provided
// material.
type FabricSource string

const (
	// FabricFromShop means the fabric is sold by the shop; its unit price is
	// read from the catalog once at order creation and frozen.
	FabricFromShop FabricSource = "shop"

	// FabricFromCustomer means the customer brings their own material; it
	// contributes nothing to the order total.
	FabricFromCustomer FabricSource = "customer"
)

// FabricSelection is a value object capturing the fabric choice for an order.
//
// For shop fabric the catalog unit price and display name are captured at
// creation time (point-in-time read, no stock locking) so later catalog price
// changes never affect existing orders. For customer-provided fabric only the
// free-text notes are kept and the cost is zero.
type FabricSelection struct {
	// source is shop or customer
	source FabricSource

	// fabricID references the catalog entry; zero for customer fabric
	fabricID kernel.UUID

	// name is the catalog display name captured at creation
	name string

	// unitPrice is the catalog price captured at creation
	unitPrice kernel.Money

	// quantity is the number of fabric units; zero for customer fabric
	quantity int

	// notes describe customer-provided material
	notes string

	// guard ensures the value was created via a constructor
	guard guard.ConstructorGuard
}

// NewShopFabric creates a shop-fabric selection with the catalog price and
// name captured point-in-time.
//
// Parameters:
//   - fabricID: catalog reference (must be a valid UUID)
//   - name: catalog display name at the time of the read
//   - unitPrice: catalog price at the time of the read
//   - quantity: fabric units (must be greater than 0)
func NewShopFabric(fabricID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (FabricSelection, error) {
	if err := fabricID.Validate(); err != nil {
		return FabricSelection{}, err
	}
	if quantity <= 0 {
		return FabricSelection{}, errs.NewValueIsInvalidErrorWithCause("fabric quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return FabricSelection{
		source:    FabricFromShop,
		fabricID:  fabricID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewCustomerFabric creates a customer-provided fabric selection.
// The notes describe the material and must not be empty.
func NewCustomerFabric(notes string) (FabricSelection, error) {
	if notes == "" {
		return FabricSelection{}, errs.NewValueIsRequiredError("fabric notes")
	}

	return FabricSelection{
		source: FabricFromCustomer,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the value was created via a constructor.
func (f FabricSelection) Validate() error {
	return f.guard.Validate(ErrFabricSelectionIsNotConstructed)
}

// Source reports whether the fabric comes from the shop or the customer.
func (f FabricSelection) Source() FabricSource {
	return f.source
}

// FabricID returns the catalog reference. Only meaningful for shop fabric.
func (f FabricSelection) FabricID() kernel.UUID {
	return f.fabricID
}

// Name returns the captured catalog display name.
func (f FabricSelection) Name() string {
	return f.name
}

// UnitPrice returns the captured catalog unit price.
func (f FabricSelection) UnitPrice() kernel.Money {
	return f.unitPrice
}

// Quantity returns the fabric units ordered.
func (f FabricSelection) Quantity() int {
	return f.quantity
}

// Notes returns the customer-material description.
func (f FabricSelection) Notes() string {
	return f.notes
}

// Cost returns the fabric contribution to the order total: zero for
// customer-provided material, captured unit price × quantity otherwise.
func (f FabricSelection) Cost() kernel.Money {
	if f.source == FabricFromCustomer {
		return kernel.Zero()
	}
	return f.unitPrice.MulQty(f.quantity)
}
