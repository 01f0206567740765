package queries

import (
	"sync"

	"atelier/internal/core/domain/model/kernel"
)

// BillSummaryCache keeps recently assembled bill read models in memory,
// keyed by order id. Command handlers invalidate an entry whenever they
// change the payment ledger of the bill, so a cached summary is never
// served after a payment or refund.
//
// Every order carries a generation counter that Invalidate bumps. A reader
// records the generation before it hits the database and hands it back to
// Put; a Put whose generation is behind the current one is discarded, so a
// summary read before a concurrent write can never be cached after that
// write's invalidation.
type BillSummaryCache struct {
	mu          sync.RWMutex
	entries     map[kernel.UUID]GetBillByOrderQueryResponse
	generations map[kernel.UUID]uint64
}

// NewBillSummaryCache creates an empty bill summary cache.
func NewBillSummaryCache() *BillSummaryCache {
	return &BillSummaryCache{
		entries:     make(map[kernel.UUID]GetBillByOrderQueryResponse),
		generations: make(map[kernel.UUID]uint64),
	}
}

// Get returns the cached summary for an order, if present.
func (c *BillSummaryCache) Get(orderID kernel.UUID) (GetBillByOrderQueryResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	response, ok := c.entries[orderID]
	return response, ok
}

// Generation returns the current invalidation generation for an order.
// Callers capture it before reading the database and pass it to Put.
func (c *BillSummaryCache) Generation(orderID kernel.UUID) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generations[orderID]
}

// Put stores the summary for an order. The entry is dropped silently when
// the order was invalidated after generation was captured.
func (c *BillSummaryCache) Put(orderID kernel.UUID, generation uint64, response GetBillByOrderQueryResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[orderID] != generation {
		return
	}
	c.entries[orderID] = response
}

// Invalidate drops the cached summary for an order and bumps its
// generation. Invalidating an order with no cached entry is not a no-op:
// the bump still fences out in-flight reads started before the write.
func (c *BillSummaryCache) Invalidate(orderID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, orderID)
	c.generations[orderID]++
}
