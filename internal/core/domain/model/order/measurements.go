package order

import (
	"errors"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrMeasurementSnapshotIsNotConstructed indicates the snapshot was not
	// created through NewMeasurementSnapshot.
	ErrMeasurementSnapshotIsNotConstructed = errors.New(
		"MeasurementSnapshot must be created via NewMeasurementSnapshot constructor",
	)
)

// MeasurementSnapshot is the customer's measurements frozen into the order at
// creation time. Production works exclusively from this copy: later changes
// to the customer's profile never touch existing orders.
//
// The snapshot is immutable; Values returns a defensive copy.
type MeasurementSnapshot struct {
	// values maps measurement names (chest, waist, inseam, ...) to their
	// recorded magnitude
	values map[string]float64

	// guard ensures the snapshot was created via the constructor
	guard guard.ConstructorGuard
}

// NewMeasurementSnapshot freezes a measurement map into a snapshot.
// An empty or nil map is rejected: production cannot proceed without
// measurements.
func NewMeasurementSnapshot(values map[string]float64) (MeasurementSnapshot, error) {
	if len(values) == 0 {
		return MeasurementSnapshot{}, errs.NewValueIsRequiredError("measurements")
	}

	copied := make(map[string]float64, len(values))
	for name, v := range values {
		if name == "" {
			return MeasurementSnapshot{}, errs.NewValueIsInvalidError("measurement name")
		}
		copied[name] = v
	}

	return MeasurementSnapshot{
		values: copied,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created via the constructor.
func (m MeasurementSnapshot) Validate() error {
	return m.guard.Validate(ErrMeasurementSnapshotIsNotConstructed)
}

// Get returns a named measurement and whether it was recorded.
func (m MeasurementSnapshot) Get(name string) (float64, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of recorded measurements.
func (m MeasurementSnapshot) Len() int {
	return len(m.values)
}

// Values returns a defensive copy of the measurement map.
func (m MeasurementSnapshot) Values() map[string]float64 {
	copied := make(map[string]float64, len(m.values))
	for name, v := range m.values {
		copied[name] = v
	}
	return copied
}

// Customization collects the styling choices for the garment. All fields are
// optional free text; an empty Customization is valid.
type Customization struct {
	// Collar is the collar style
	Collar string

	// Sleeve is the sleeve style
	Sleeve string

	// Pocket is the pocket style
	Pocket string

	// Notes holds any further styling instructions
	Notes string
}
