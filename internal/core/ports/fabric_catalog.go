package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// CatalogFabric is the point-in-time price card of a shop fabric. The unit
// price read here is what gets frozen into the order.
type CatalogFabric struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
}

// FabricCatalog resolves shop fabrics against the catalog service.
// Unreachable catalog or a 5xx answer surfaces as an external unavailable
// error so callers can tell a retryable outage from an unknown fabric.
type FabricCatalog interface {
	// Get resolves a fabric id to its current price card.
	// Returns a not found error for unknown fabric ids.
	Get(ctx context.Context, fabricID kernel.UUID) (CatalogFabric, error)
}
