package ports

import (
	"context"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
// A bill and its payment ledger are stored and loaded as one unit so the
// derived amount paid and payment status can always be recomputed from rows.
type BillRepository interface {
	// Add persists a new bill aggregate to storage.
	// The bill must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *bill.Bill) error

	// Update persists changes to an existing bill aggregate, including
	// appended payments and payments removed by a refund. The stored row
	// is matched on both id and the loaded version; a mismatch surfaces
	// as a conflict error.
	Update(ctx context.Context, aggregate *bill.Bill) error

	// Get retrieves a bill aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error)

	// GetByOrder retrieves the bill generated for the given order.
	// Returns a not found error when the order has no bill yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error)

	// GetAllOutstanding retrieves all bills whose payment status is not
	// yet Paid. Used by the payment reminder job.
	GetAllOutstanding(ctx context.Context) ([]*bill.Bill, error)
}
