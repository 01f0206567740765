package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a tailoring order in the system. It is the aggregate root
// that manages the production lifecycle from placement through cutting,
// stitching, trial and readiness to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must have at least one line item and a non-empty measurement snapshot
//   - The total equals the pricing calculation performed once at creation
//     and is never recomputed, even if catalog prices change later
//   - Status transitions follow the production state machine; the embroidery
//     sub-workflow gates the Stitching stage
//   - Every transition lands in the status audit trail; forced overrides are
//     marked as such
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// items are the garments/services ordered (at least one)
	items []LineItem

	// fabric is the fabric selection frozen at creation
	fabric FabricSelection

	// measurements is the immutable measurement snapshot
	measurements MeasurementSnapshot

	// customization holds the styling choices
	customization Customization

	// embroidery is the optional embroidery sub-entity
	embroidery Embroidery

	// tailorID is the assigned tailor (nil if unassigned)
	tailorID *kernel.UUID

	// status is the current state in the production lifecycle
	status Status

	// total is the order total frozen at creation
	total kernel.Money

	// urgent marks expedited orders carrying the urgency surcharge
	urgent bool

	// expectedDelivery is the promised completion date
	expectedDelivery time.Time

	// attachments are references to stored design/reference files
	attachments []string

	// createdAt/updatedAt are entity timestamps
	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic concurrency token loaded from storage
	version int

	// changes holds audit entries recorded since the aggregate was loaded
	changes []StatusChange

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in OrderPlaced status.
//
// The total must be the result of the pricing calculation over the same
// items, fabric, embroidery and urgency flag; it is frozen here and never
// recomputed.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: owning customer (existence is checked by the use case)
//   - items: at least one validated line item
//   - fabric: fabric selection with captured catalog pricing
//   - measurements: non-empty measurement snapshot
//   - customization: styling choices (may be empty)
//   - embroidery: embroidery sub-entity with its priced cost frozen in
//   - urgent: whether the urgency surcharge applies
//   - expectedDelivery: promised completion date (required)
//   - total: the priced order total
//
// Returns the order or an aggregated validation error; no partial state is
// ever produced.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	fabric FabricSelection,
	measurements MeasurementSnapshot,
	customization Customization,
	embroidery Embroidery,
	urgent bool,
	expectedDelivery time.Time,
	total kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        OrderPlaced,
		customization: customization,
		urgent:        urgent,
		total:         total,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setFabric(fabric),
		o.setMeasurements(measurements),
		o.setEmbroidery(embroidery),
		o.setExpectedDelivery(expectedDelivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the full lifecycle state: status, tailor
// assignment, attachments, timestamps and the optimistic version token.
// The restored order behaves identically to one created through normal
// domain operations; its audit-trail buffer starts empty.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	fabric FabricSelection,
	measurements MeasurementSnapshot,
	customization Customization,
	embroidery Embroidery,
	tailorID *kernel.UUID,
	status Status,
	total kernel.Money,
	urgent bool,
	expectedDelivery time.Time,
	attachments []string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		customization: customization,
		urgent:        urgent,
		total:         total,
		attachments:   append([]string(nil), attachments...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setFabric(fabric),
		o.setMeasurements(measurements),
		o.setEmbroidery(embroidery),
		o.setStatus(status),
		o.setTailorID(tailorID),
		o.setExpectedDelivery(expectedDelivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Fabric returns the fabric selection.
func (o *Order) Fabric() FabricSelection {
	return o.fabric
}

// Measurements returns the frozen measurement snapshot.
func (o *Order) Measurements() MeasurementSnapshot {
	return o.measurements
}

// Customization returns the styling choices.
func (o *Order) Customization() Customization {
	return o.customization
}

// Embroidery returns the embroidery sub-entity.
func (o *Order) Embroidery() Embroidery {
	return o.embroidery
}

// Tailor returns the assigned tailor's ID, or nil if unassigned.
func (o *Order) Tailor() *kernel.UUID {
	return o.tailorID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total frozen at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Urgent reports whether the order carries the urgency surcharge.
func (o *Order) Urgent() bool {
	return o.urgent
}

// ExpectedDelivery returns the promised completion date.
func (o *Order) ExpectedDelivery() time.Time {
	return o.expectedDelivery
}

// Attachments returns a copy of the stored file references.
func (o *Order) Attachments() []string {
	return append([]string(nil), o.attachments...)
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency token loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// Changes returns the audit entries recorded since the aggregate was loaded.
// The repository persists these alongside the order row.
func (o *Order) Changes() []StatusChange {
	return append([]StatusChange(nil), o.changes...)
}

// Advance performs a non-forced status transition on behalf of an actor.
//
// Legality has three layers, all checked before any mutation:
//   - the state machine: the single forward successor, or Cancelled from any
//     non-terminal stage (see Status.CanAdvanceTo)
//   - the embroidery gate: an order with enabled, incomplete embroidery
//     cannot leave Stitching
//   - the acting role: a Tailor may advance only orders assigned to them and
//     may never cancel; a Customer may only cancel their own order while it
//     is still OrderPlaced; Staff and Admin may perform any legal transition
//
// Every successful transition is recorded in the audit trail.
func (o *Order) Advance(to Status, actorID kernel.UUID, role actor.Role) error {
	if err := o.authorizeAdvance(to, actorID, role); err != nil {
		return err
	}

	if o.status == Stitching && to != Cancelled && o.embroidery.Blocks() {
		return errs.NewConflictErrorWithCause("embroidery gate", ErrEmbroideryIncomplete)
	}

	newStatus, err := o.status.Advance(to)
	if err != nil {
		return err
	}

	o.recordTransition(newStatus, actorID, role, false)
	return nil
}

// ForceTransition moves the order to any valid status, bypassing the state
// machine, the embroidery gate, and terminal-state protection. Only Staff
// and Admin may force, and the resulting audit entry is always marked as
// forced — backward corrections are explicit and reviewable, never silent.
func (o *Order) ForceTransition(to Status, actorID kernel.UUID, role actor.Role) error {
	if err := errors.Join(actorID.Validate(), role.Validate(), to.Validate()); err != nil {
		return err
	}

	if !role.IsStaffLevel() {
		return errs.NewValueIsInvalidErrorWithCause("actingRole",
			fmt.Errorf("%s may not force status transitions", role))
	}

	o.recordTransition(to, actorID, role, true)
	return nil
}

// AssignTailor assigns the order to a tailor.
//
// Assignment is allowed only while production has not passed Cutting.
// Re-assigning the same tailor is an idempotent no-op. The caller is
// responsible for checking that the referenced actor exists and is a tailor.
func (o *Order) AssignTailor(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	if o.tailorID != nil && o.tailorID.IsEqual(tailorID) {
		return nil
	}

	if o.status != OrderPlaced && o.status != Cutting {
		return errs.NewConflictErrorWithCause("tailor assignment",
			fmt.Errorf("%s is not a valid status to assign a tailor", o.status))
	}

	o.tailorID = &tailorID
	o.touch()
	return nil
}

// CompleteEmbroidery marks the embroidery sub-workflow as done, releasing
// the Stitching gate. Completing already-complete or disabled embroidery is
// a no-op; completing on a terminal order is a conflict.
func (o *Order) CompleteEmbroidery() error {
	if o.status.IsTerminal() {
		return errs.NewConflictErrorWithCause("embroidery completion",
			fmt.Errorf("order is %s", o.status))
	}

	o.embroidery.complete()
	o.touch()
	return nil
}

// AddAttachment records a reference to a stored design or reference file.
func (o *Order) AddAttachment(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("attachment reference")
	}
	o.attachments = append(o.attachments, ref)
	o.touch()
	return nil
}

func (o *Order) authorizeAdvance(to Status, actorID kernel.UUID, role actor.Role) error {
	if err := errors.Join(actorID.Validate(), role.Validate()); err != nil {
		return err
	}

	switch role {
	case actor.RoleStaff, actor.RoleAdmin:
		return nil
	case actor.RoleTailor:
		if to == Cancelled {
			return errs.NewValueIsInvalidErrorWithCause("actingRole",
				fmt.Errorf("%s may not cancel orders", role))
		}
		if o.tailorID == nil || !o.tailorID.IsEqual(actorID) {
			return errs.NewValueIsInvalidErrorWithCause("actingRole",
				fmt.Errorf("tailor may only advance orders assigned to them"))
		}
		return nil
	case actor.RoleCustomer:
		if to != Cancelled || !o.customerID.IsEqual(actorID) {
			return errs.NewValueIsInvalidErrorWithCause("actingRole",
				fmt.Errorf("%s may only cancel their own order", role))
		}
		if o.status != OrderPlaced {
			return errs.NewConflictErrorWithCause("customer cancellation",
				fmt.Errorf("%s orders can no longer be cancelled by the customer", o.status))
		}
		return nil
	default:
		return errs.NewValueIsInvalidError("actingRole")
	}
}

func (o *Order) recordTransition(to Status, actorID kernel.UUID, role actor.Role, forced bool) {
	o.changes = append(o.changes, newStatusChange(o.status, to, actorID, role, forced))
	o.status = to
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setFabric(fabric FabricSelection) error {
	if err := fabric.Validate(); err != nil {
		return err
	}
	o.fabric = fabric
	return nil
}

func (o *Order) setMeasurements(m MeasurementSnapshot) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("measurements", err)
	}
	o.measurements = m
	return nil
}

func (o *Order) setEmbroidery(e Embroidery) error {
	if err := e.Validate(); err != nil {
		return err
	}
	o.embroidery = e
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setTailorID(tailorID *kernel.UUID) error {
	if tailorID == nil {
		return nil
	}
	if err := tailorID.Validate(); err != nil {
		return err
	}
	o.tailorID = tailorID
	return nil
}

func (o *Order) setExpectedDelivery(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("expectedDelivery")
	}
	o.expectedDelivery = t
	return nil
}
