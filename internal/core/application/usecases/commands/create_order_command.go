package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired           = errors.New("at least one line item is required")
	ErrExpectedDeliveryIsRequired = errors.New("expected delivery date is required")
	ErrFabricSourceIsRequired     = errors.New("fabric source is required")
)

// LineItemInput is the raw line item of an incoming order request.
type LineItemInput struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

// FabricInput is the raw fabric choice of an incoming order request.
// For shop fabric the unit price is NOT taken from the request; the handler
// reads it from the catalog at creation time.
type FabricInput struct {
	Source   string
	FabricID kernel.UUID
	Quantity int
	Notes    string
}

// EmbroideryInput is the raw embroidery request. A disabled input produces an
// order without embroidery.
type EmbroideryInput struct {
	Enabled    bool
	Type       string
	Placements []string
	Pattern    string
	Colors     []string
	Notes      string
}

// CustomizationInput carries the free-form styling choices of a request.
type CustomizationInput struct {
	Collar string
	Sleeve string
	Pocket string
	Notes  string
}

// CreateOrderCommand represents a request to create a new tailoring order.
// Encapsulates the full order composition: line items, fabric choice,
// measurements, customization, embroidery and the delivery promise.
//
// Measurements may be empty in the command; the handler then falls back to
// the customer's measurements on file.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID,
//	    []LineItemInput{{Name: "kurta stitching", Quantity: 1, UnitPrice: 800}},
//	    FabricInput{Source: "customer", Notes: "own linen"},
//	    map[string]float64{"chest": 100},
//	    CustomizationInput{}, EmbroideryInput{}, false, delivery,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	items            []LineItemInput
	fabric           FabricInput
	measurements     map[string]float64
	customization    CustomizationInput
	embroidery       EmbroideryInput
	urgent           bool
	expectedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new tailoring order.
// Validates identifiers, presence of line items, a fabric source and the
// expected delivery date. Domain-level rules (item quantities, embroidery
// composition, measurement contents) are enforced by the handler through the
// aggregate constructors.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []LineItemInput,
	fabric FabricInput,
	measurements map[string]float64,
	customization CustomizationInput,
	embroidery EmbroideryInput,
	urgent bool,
	expectedDelivery time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		measurements:  measurements,
		customization: customization,
		embroidery:    embroidery,
		urgent:        urgent,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setFabric(fabric),
		orderCommand.setExpectedDelivery(expectedDelivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []LineItemInput {
	return c.items
}

// Fabric returns the requested fabric choice.
func (c CreateOrderCommand) Fabric() FabricInput {
	return c.fabric
}

// Measurements returns the inline measurement values, possibly empty.
func (c CreateOrderCommand) Measurements() map[string]float64 {
	return c.measurements
}

// Customization returns the styling choices.
func (c CreateOrderCommand) Customization() CustomizationInput {
	return c.customization
}

// Embroidery returns the embroidery request.
func (c CreateOrderCommand) Embroidery() EmbroideryInput {
	return c.embroidery
}

// Urgent reports whether the urgency surcharge applies.
func (c CreateOrderCommand) Urgent() bool {
	return c.urgent
}

// ExpectedDelivery returns the promised completion date.
func (c CreateOrderCommand) ExpectedDelivery() time.Time {
	return c.expectedDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setFabric(fabric FabricInput) error {
	if fabric.Source == "" {
		return ErrFabricSourceIsRequired
	}

	c.fabric = fabric
	return nil
}

func (c *CreateOrderCommand) setExpectedDelivery(expectedDelivery time.Time) error {
	if expectedDelivery.IsZero() {
		return ErrExpectedDeliveryIsRequired
	}

	c.expectedDelivery = expectedDelivery
	return nil
}
