package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of a tailoring order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	OrderPlaced ──> Cutting ──> Stitching ──> Trial ──> Ready ──> Delivered
//	     │             │            │           │         │
//	     └─────────────┴────────────┴───────────┴─────────┴──> Cancelled
//
// The machine is forward-only: each stage advances to exactly one successor,
// and Cancelled is reachable from any non-terminal stage. Moving backward is
// possible only through the audited administrative override on the Order
// aggregate, never through Advance.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// OrderPlaced is the initial status when an order is first created.
	// Orders in this status are waiting for production to start.
	OrderPlaced

	// Cutting indicates fabric cutting is in progress.
	Cutting

	// Stitching indicates the garment is being stitched. Orders with
	// embroidery enabled cannot leave this stage until the embroidery
	// sub-workflow completes.
	Stitching

	// Trial indicates the garment is ready for a customer fitting.
	Trial

	// Ready indicates the garment passed trial and awaits pickup/delivery.
	Ready

	// Delivered indicates the order has been handed over to the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a final state reachable from any non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		OrderPlaced: "OrderPlaced",
		Cutting:     "Cutting",
		Stitching:   "Stitching",
		Trial:       "Trial",
		Ready:       "Ready",
		Delivered:   "Delivered",
		Cancelled:   "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		OrderPlaced: "OrderPlaced",
		Cutting:     "Cutting",
		Stitching:   "Stitching",
		Trial:       "Trial",
		Ready:       "Ready",
		Delivered:   "Delivered",
		Cancelled:   "Cancelled",
	}
}

// getForwardSuccessors returns the single legal forward successor per stage.
// Terminal statuses have no successor.
func getForwardSuccessors() map[Status]Status {
	//nolint:exhaustive // terminal statuses have no successor
	return map[Status]Status{
		OrderPlaced: Cutting,
		Cutting:     Stitching,
		Stitching:   Trial,
		Trial:       Ready,
		Ready:       Delivered,
	}
}

// StatusFromString parses a stored or transported status name.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: OrderPlaced, Cutting, Stitching, Trial, Ready,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanAdvanceTo checks whether moving to next is a legal non-forced
// transition: either the single forward successor of the current stage, or
// Cancelled from any non-terminal stage.
//
// Returns:
//   - nil if the transition is legal
//   - a conflict error describing the rejected transition otherwise
func (s Status) CanAdvanceTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewConflictErrorWithCause(
			"illegal transition",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next),
		)
	}

	if next == Cancelled {
		return nil
	}

	if successor, ok := getForwardSuccessors()[s]; ok && successor == next {
		return nil
	}

	return errs.NewConflictErrorWithCause(
		"illegal transition",
		fmt.Errorf("%s cannot transition to %s", s, next),
	)
}

// Advance transitions to next after validating legality via CanAdvanceTo.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Advance(next Status) (Status, error) {
	if err := s.CanAdvanceTo(next); err != nil {
		return 0, err
	}
	return next, nil
}
