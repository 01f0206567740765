package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrEmbroideryIsNotConstructed indicates the Embroidery value was not
	// initialized through NewEmbroidery, DisabledEmbroidery or
	// RestoreEmbroidery.
	ErrEmbroideryIsNotConstructed = errors.New(
		"Embroidery must be created via NewEmbroidery, DisabledEmbroidery, or RestoreEmbroidery",
	)

	// ErrEmbroideryIncomplete indicates the embroidery sub-workflow still
	// gates a production transition.
	ErrEmbroideryIncomplete = errors.New("embroidery work is not complete")
)

// EmbroideryType identifies the embroidery technique.
type EmbroideryType string

const (
	// EmbroideryHand is hand-worked embroidery.
	EmbroideryHand EmbroideryType = "hand"

	// EmbroideryMachine is machine embroidery.
	EmbroideryMachine EmbroideryType = "machine"
)

// Validate checks the type against the known techniques.
func (t EmbroideryType) Validate() error {
	switch t {
	case EmbroideryHand, EmbroideryMachine:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("embroidery type",
			fmt.Errorf("%q is not a valid embroidery type", string(t)))
	}
}

// Placement identifies where on the garment embroidery is applied.
type Placement string

const (
	PlacementCollar  Placement = "collar"
	PlacementSleeves Placement = "sleeves"
	PlacementChest   Placement = "chest"
	PlacementBack    Placement = "back"
)

// Validate checks the placement against the known positions.
func (p Placement) Validate() error {
	switch p {
	case PlacementCollar, PlacementSleeves, PlacementChest, PlacementBack:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("embroidery placement",
			fmt.Errorf("%q is not a valid placement", string(p)))
	}
}

// EmbroideryStatus tracks the embroidery sub-workflow.
// It gates the Stitching stage of the order state machine: an order with
// enabled embroidery cannot advance out of Stitching until complete.
type EmbroideryStatus string

const (
	// EmbroideryPending means embroidery work has not finished yet.
	EmbroideryPending EmbroideryStatus = "pending"

	// EmbroideryComplete means embroidery work is done.
	EmbroideryComplete EmbroideryStatus = "complete"
)

// Embroidery is a sub-entity of the Order aggregate describing optional
// embroidery work: technique, placements, pattern, thread colors and the
// sub-workflow status. The computed cost is frozen into the entity at order
// creation, alongside the order total.
//
// A disabled Embroidery is a valid, inert value: zero cost, no gating.
type Embroidery struct {
	// enabled reports whether the order includes embroidery at all
	enabled bool

	// embType is the embroidery technique
	embType EmbroideryType

	// placements are the garment positions embroidered
	placements []Placement

	// pattern is a free-text description of the requested motif
	pattern string

	// colors are the requested thread colors; extra colors beyond the first
	// carry a surcharge
	colors []string

	// notes are free-text instructions for the embroiderer
	notes string

	// status is the sub-workflow state (pending or complete)
	status EmbroideryStatus

	// cost is the computed embroidery cost frozen at order creation
	cost kernel.Money

	// guard ensures the value was created via a constructor
	guard guard.ConstructorGuard
}

// DisabledEmbroidery returns the inert value used by orders without
// embroidery work.
func DisabledEmbroidery() Embroidery {
	return Embroidery{
		status: EmbroideryComplete,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewEmbroidery creates an enabled embroidery request in pending status.
//
// Parameters:
//   - embType: technique (hand or machine)
//   - placements: at least one valid garment position
//   - pattern: free-text motif description (may be empty)
//   - colors: at least one thread color
//   - notes: free-text instructions (may be empty)
//
// The cost starts at zero; the order constructor freezes the priced cost via
// WithCost once the pricing calculator has run.
func NewEmbroidery(
	embType EmbroideryType,
	placements []Placement,
	pattern string,
	colors []string,
	notes string,
) (Embroidery, error) {
	if err := embType.Validate(); err != nil {
		return Embroidery{}, err
	}

	if len(placements) == 0 {
		return Embroidery{}, errs.NewValueIsRequiredError("embroidery placements")
	}
	for _, p := range placements {
		if err := p.Validate(); err != nil {
			return Embroidery{}, err
		}
	}

	if len(colors) == 0 {
		return Embroidery{}, errs.NewValueIsRequiredError("embroidery colors")
	}
	for _, c := range colors {
		if c == "" {
			return Embroidery{}, errs.NewValueIsInvalidError("embroidery color")
		}
	}

	return Embroidery{
		enabled:    true,
		embType:    embType,
		placements: append([]Placement(nil), placements...),
		pattern:    pattern,
		colors:     append([]string(nil), colors...),
		notes:      notes,
		status:     EmbroideryPending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEmbroidery reconstructs the sub-entity from persistent storage,
// including sub-workflow status and the frozen cost.
func RestoreEmbroidery(
	enabled bool,
	embType EmbroideryType,
	placements []Placement,
	pattern string,
	colors []string,
	notes string,
	status EmbroideryStatus,
	cost kernel.Money,
) (Embroidery, error) {
	if !enabled {
		return DisabledEmbroidery(), nil
	}

	e, err := NewEmbroidery(embType, placements, pattern, colors, notes)
	if err != nil {
		return Embroidery{}, err
	}
	e.status = status
	e.cost = cost
	return e, nil
}

// WithCost returns a copy with the priced embroidery cost frozen in.
// Called once by the order constructor; the cost never changes afterwards.
func (e Embroidery) WithCost(cost kernel.Money) Embroidery {
	e.cost = cost
	return e
}

// Validate ensures the value was created via a constructor.
func (e Embroidery) Validate() error {
	return e.guard.Validate(ErrEmbroideryIsNotConstructed)
}

// Enabled reports whether the order includes embroidery work.
func (e Embroidery) Enabled() bool {
	return e.enabled
}

// Type returns the embroidery technique.
func (e Embroidery) Type() EmbroideryType {
	return e.embType
}

// Placements returns a copy of the embroidered garment positions.
func (e Embroidery) Placements() []Placement {
	return append([]Placement(nil), e.placements...)
}

// Pattern returns the motif description.
func (e Embroidery) Pattern() string {
	return e.pattern
}

// Colors returns a copy of the requested thread colors.
func (e Embroidery) Colors() []string {
	return append([]string(nil), e.colors...)
}

// Notes returns the embroiderer instructions.
func (e Embroidery) Notes() string {
	return e.notes
}

// Status returns the sub-workflow status.
func (e Embroidery) Status() EmbroideryStatus {
	return e.status
}

// Cost returns the frozen embroidery cost.
func (e Embroidery) Cost() kernel.Money {
	return e.cost
}

// Blocks reports whether the embroidery sub-workflow currently gates the
// order's Stitching stage: enabled work that is not yet complete.
func (e Embroidery) Blocks() bool {
	return e.enabled && e.status != EmbroideryComplete
}

// complete marks the embroidery work as done. It is a no-op when embroidery
// is disabled or already complete, which makes CompleteEmbroidery idempotent.
func (e *Embroidery) complete() {
	if !e.enabled || e.status == EmbroideryComplete {
		return
	}
	e.status = EmbroideryComplete
}
