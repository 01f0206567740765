package commands

import (
	"atelier/internal/core/domain/model/kernel"
)

// BillSummaryCache is the write side's view of the bill summary read cache.
// Handlers that change a ledger drop the cached summary after commit so the
// next read rebuilds it from storage.
type BillSummaryCache interface {
	Invalidate(orderID kernel.UUID)
}
