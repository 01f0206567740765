package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetBillByOrderQueryIsNotConstructed = errors.New(
		"GetBillByOrderQuery must be created via NewGetBillByOrderQuery constructor",
	)
)

// GetBillByOrderQuery retrieves the billing summary of an order: the bill,
// its payments and the derived payment status.
//
// Example:
//
//	query, err := queries.NewGetBillByOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get bill: %w", err)
//	}
//
//	fmt.Printf("Bill %s: %d outstanding\n", summary.BillID, summary.Outstanding)
type GetBillByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBillByOrderQuery creates a query for the bill of a given order.
func NewGetBillByOrderQuery(orderID kernel.UUID) (GetBillByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetBillByOrderQuery{}, err
	}

	return GetBillByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetBillByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the billed order.
func (q GetBillByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetBillByOrderQueryResponse is the flat read model of a bill.
type GetBillByOrderQueryResponse struct {
	BillID          kernel.UUID
	OrderID         kernel.UUID
	Amount          int64
	AmountPaid      int64
	Outstanding     int64
	Status          string
	ExternalOrderID string
	CheckoutURL     string
	Payments        []PaymentView
	CreatedAt       time.Time
}

// PaymentView is one payment entry of the bill read model.
type PaymentView struct {
	ID          kernel.UUID
	Amount      int64
	Method      string
	ExternalRef string
	Verified    bool
	RecordedAt  time.Time
}
