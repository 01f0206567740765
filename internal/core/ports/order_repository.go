// Package ports defines the persistence and external-client contracts of the
// atelier core. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and updating orders together
// with their line items, embroidery state and status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored row is matched on both id and the version the aggregate
	// was loaded with; a version mismatch surfaces as a conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its status change history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
