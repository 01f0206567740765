// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database into flat response models, bypassing the domain layer.
package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full view of a single order: line items,
// fabric, measurements, embroidery state and the status audit trail.
//
// Example:
//
//	query, err := queries.NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", view.ID, view.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the flat read model of an order.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	TailorID         *kernel.UUID
	Status           string
	Items            []OrderItemView
	FabricSource     string
	FabricName       string
	FabricQuantity   int
	FabricNotes      string
	Measurements     map[string]float64
	Customization    CustomizationView
	Embroidery       EmbroideryView
	Urgent           bool
	Total            int64
	ExpectedDelivery time.Time
	Attachments      []string
	StatusHistory    []StatusChangeView
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int
}

// OrderItemView is one garment line of the order read model.
type OrderItemView struct {
	Name      string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// CustomizationView carries the styling choices of the order read model.
type CustomizationView struct {
	Collar string
	Sleeve string
	Pocket string
	Notes  string
}

// EmbroideryView carries embroidery configuration and sub-workflow state.
type EmbroideryView struct {
	Enabled    bool
	Type       string
	Placements []string
	Pattern    string
	Colors     []string
	Notes      string
	Status     string
	Cost       int64
}

// StatusChangeView is one audit trail entry of the order read model.
type StatusChangeView struct {
	From    string
	To      string
	ActorID kernel.UUID
	Role    string
	Forced  bool
	At      time.Time
}
