package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// MeasurementProvider fetches the latest stored measurements of a customer
// from the measurement service. Used when an order is created without an
// inline measurement snapshot.
type MeasurementProvider interface {
	// Get returns the customer's measurements as named values.
	// Returns a not found error when the customer has none on file.
	Get(ctx context.Context, customerID kernel.UUID) (map[string]float64, error)
}
