package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// GetBillByOrderQueryHandler retrieves bill summaries from the database,
// serving repeated reads of an unchanged bill from the in-memory cache.
type GetBillByOrderQueryHandler struct {
	db    *gorm.DB
	cache *BillSummaryCache
}

// NewGetBillByOrderQueryHandler creates a handler for bill summary queries.
func NewGetBillByOrderQueryHandler(db *gorm.DB, cache *BillSummaryCache) GetBillByOrderQueryHandler {
	return GetBillByOrderQueryHandler{db: db, cache: cache}
}

// Handle executes the query and assembles the bill read model.
// Returns ErrObjectNotFound if the order has no bill yet.
func (h GetBillByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetBillByOrderQuery,
) (GetBillByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	if cached, ok := h.cache.Get(query.OrderID()); ok {
		return cached, nil
	}

	generation := h.cache.Generation(query.OrderID())

	response, err := h.readBill(ctx, query.OrderID())
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	response.Payments, err = h.readPayments(ctx, response.BillID)
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	for _, p := range response.Payments {
		response.AmountPaid += p.Amount
	}
	response.Outstanding = response.Amount - response.AmountPaid
	if response.Outstanding < 0 {
		response.Outstanding = 0
	}

	h.cache.Put(query.OrderID(), generation, response)
	return response, nil
}

func (h GetBillByOrderQueryHandler) readBill(ctx context.Context, orderID kernel.UUID) (GetBillByOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			status,
			external_order_id,
			checkout_url,
			created_at
		FROM bills
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetBillByOrderQueryResponse{}, err
		}
		return GetBillByOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}

	var response GetBillByOrderQueryResponse
	var billID, billOrderID uuid.UUID
	var status int

	err = rows.Scan(
		&billID,
		&billOrderID,
		&response.Amount,
		&status,
		&response.ExternalOrderID,
		&response.CheckoutURL,
		&response.CreatedAt,
	)
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	response.BillID, err = kernel.UUIDFromBytes(billID[:])
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	response.OrderID, err = kernel.UUIDFromBytes(billOrderID[:])
	if err != nil {
		return GetBillByOrderQueryResponse{}, err
	}

	response.Status = bill.Status(status).String()
	return response, rows.Err()
}

func (h GetBillByOrderQueryHandler) readPayments(ctx context.Context, billID kernel.UUID) ([]PaymentView, error) {
	payments := make([]PaymentView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			method,
			external_ref,
			verified,
			recorded_at
		FROM payments
		WHERE bill_id = ?
		ORDER BY recorded_at
	`, billID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view PaymentView
		var id uuid.UUID
		var method int

		if err = rows.Scan(&id, &view.Amount, &method, &view.ExternalRef, &view.Verified, &view.RecordedAt); err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		view.Method = bill.Method(method).String()

		payments = append(payments, view)
	}

	return payments, rows.Err()
}
