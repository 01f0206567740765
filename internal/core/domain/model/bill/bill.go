package bill

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill instance was not
	// created through the NewBill or RestoreBill factory methods.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")
)

// Bill represents the billing ledger entry linked 1:1 to an order. It owns
// the ordered payment list and the two derived facts the rest of the system
// reads: amountPaid and settlement status.
//
// Bill follows these invariants:
//   - amount is copied from the order total at generation and never changes
//   - amountPaid always equals the sum of the payment list; both are
//     recomputed inside every mutating method, in the same step as the list
//     change, so no observable state has one without the other
//   - status is a pure function of (amountPaid, amount) — see DeriveStatus
//   - payments may be appended only while status != Paid
//   - a gateway payment id appears in the list at most once; replaying a
//     verified callback is a no-op rather than a double-count
//
// Overpayment is accepted and flagged via Overpaid rather than rejected:
// by the time the ledger sees a verified gateway payment the money has
// already been captured, so refusal would lose the record of it.
type Bill struct {
	// id is the unique identifier for the bill
	id kernel.UUID

	// orderID references the order this bill settles (unique, 1:1)
	orderID kernel.UUID

	// amount is the billed amount copied from the order total
	amount kernel.Money

	// externalOrderID is the gateway checkout session id opened for this
	// bill; empty until a session is attached
	externalOrderID string

	// checkoutURL is the hosted checkout page of the attached session
	checkoutURL string

	// payments is the ordered list of recorded payments
	payments []Payment

	// amountPaid is derived: always the sum of payments
	amountPaid kernel.Money

	// status is derived from (amountPaid, amount)
	status Status

	// removedPaymentIDs tracks refund removals since the aggregate was
	// loaded, for the repository to delete
	removedPaymentIDs []kernel.UUID

	// createdAt is the generation timestamp
	createdAt time.Time

	// version is the optimistic concurrency token loaded from storage
	version int

	// guard ensures the bill was created via a constructor
	guard guard.ConstructorGuard
}

// NewBill generates a bill for an order, copying the order total as the
// immutable billed amount. The bill starts Unpaid with no payments.
func NewBill(id kernel.UUID, orderID kernel.UUID, amount kernel.Money) (*Bill, error) {
	b := &Bill{
		amount:    amount,
		status:    StatusUnpaid,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBill reconstructs a Bill aggregate from persistent storage. The
// derived fields are recomputed from the restored payment list rather than
// trusted from storage, so a bill can never load in a drifted state.
func RestoreBill(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	externalOrderID string,
	checkoutURL string,
	payments []Payment,
	createdAt time.Time,
	version int,
) (*Bill, error) {
	b := &Bill{
		amount:          amount,
		externalOrderID: externalOrderID,
		checkoutURL:     checkoutURL,
		createdAt:       createdAt,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	b.payments = append([]Payment(nil), payments...)
	b.recompute()

	return b, nil
}

// Validate ensures the Bill instance was properly constructed.
func (b *Bill) Validate() error {
	if b == nil {
		return ErrBillIsNotConstructed
	}
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// IsEqual compares two bills by their unique identifiers.
func (b *Bill) IsEqual(other *Bill) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bill's unique identifier.
func (b *Bill) ID() kernel.UUID {
	return b.id
}

// OrderID returns the linked order's identifier.
func (b *Bill) OrderID() kernel.UUID {
	return b.orderID
}

// Amount returns the billed amount frozen at generation.
func (b *Bill) Amount() kernel.Money {
	return b.amount
}

// ExternalOrderID returns the id of the gateway checkout session opened for
// this bill, or an empty string when no session was requested.
func (b *Bill) ExternalOrderID() string {
	return b.externalOrderID
}

// CheckoutURL returns the hosted checkout page of the attached session, or
// an empty string when no session was requested.
func (b *Bill) CheckoutURL() string {
	return b.checkoutURL
}

// AmountPaid returns the derived sum of all recorded payments.
func (b *Bill) AmountPaid() kernel.Money {
	return b.amountPaid
}

// Status returns the derived settlement status.
func (b *Bill) Status() Status {
	return b.status
}

// Payments returns a copy of the ordered payment list.
func (b *Bill) Payments() []Payment {
	return append([]Payment(nil), b.payments...)
}

// CreatedAt returns the generation timestamp.
func (b *Bill) CreatedAt() time.Time {
	return b.createdAt
}

// Version returns the optimistic concurrency token loaded from storage.
func (b *Bill) Version() int {
	return b.version
}

// RemovedPaymentIDs returns the payment ids removed since the aggregate was
// loaded. The repository deletes these rows on update.
func (b *Bill) RemovedPaymentIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), b.removedPaymentIDs...)
}

// Overpaid reports whether recorded payments exceed the billed amount.
// Overpayment is accepted but flagged for staff follow-up.
func (b *Bill) Overpaid() bool {
	return b.amount.Less(b.amountPaid)
}

// HasExternalPayment reports whether a gateway payment with the given
// external id is already recorded. Used to make verified-callback replays
// idempotent.
func (b *Bill) HasExternalPayment(externalRef string) bool {
	if externalRef == "" {
		return false
	}
	for _, p := range b.payments {
		if p.ExternalRef() == externalRef {
			return true
		}
	}
	return false
}

// PaymentByExternalRef returns the recorded payment carrying the given
// external id. Used to answer callback replays with the payment that is
// actually on the ledger.
func (b *Bill) PaymentByExternalRef(externalRef string) (Payment, bool) {
	if externalRef == "" {
		return Payment{}, false
	}
	for _, p := range b.payments {
		if p.ExternalRef() == externalRef {
			return p, true
		}
	}
	return Payment{}, false
}

// AttachSession records the gateway checkout session opened for this bill.
// A bill carries at most one session; attaching the same session again is a
// no-op and attaching a different one is a conflict.
func (b *Bill) AttachSession(externalOrderID string, checkoutURL string) error {
	if externalOrderID == "" {
		return errs.NewValueIsRequiredError("externalOrderID")
	}

	if b.externalOrderID == externalOrderID {
		return nil
	}

	if b.externalOrderID != "" {
		return errs.NewConflictErrorWithCause("session attachment",
			fmt.Errorf("bill %s already has session %s", b.id, b.externalOrderID))
	}

	b.externalOrderID = externalOrderID
	b.checkoutURL = checkoutURL
	return nil
}

// RecordPayment appends a payment and recomputes amountPaid and status in
// the same step — callers never observe the list changed without the
// derived fields following.
//
// Rules:
//   - a settled bill accepts no further payments (conflict)
//   - replaying an already-recorded gateway payment id is a no-op
//   - payment validity (positive amount, verification) is enforced by the
//     Payment constructor before this method is reachable
func (b *Bill) RecordPayment(p Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if b.status == StatusPaid {
		return errs.NewConflictErrorWithCause("payment recording",
			fmt.Errorf("bill %s is already settled", b.id))
	}

	if b.HasExternalPayment(p.ExternalRef()) {
		return nil
	}

	b.payments = append(b.payments, p)
	b.recompute()
	return nil
}

// RemovePayment removes a recorded payment (administrative refund
// adjustment) and recomputes the derived fields in the same step. The
// removal is tracked so the repository deletes the row on update.
func (b *Bill) RemovePayment(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	for i, p := range b.payments {
		if p.ID().IsEqual(paymentID) {
			b.payments = append(b.payments[:i], b.payments[i+1:]...)
			b.removedPaymentIDs = append(b.removedPaymentIDs, paymentID)
			b.recompute()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("paymentId", paymentID.String())
}

// recompute re-derives amountPaid and status from the payment list. Every
// mutation funnels through here, which is what keeps the sum and the status
// function from ever drifting.
func (b *Bill) recompute() {
	total := kernel.Zero()
	for _, p := range b.payments {
		total = total.Add(p.Amount())
	}
	b.amountPaid = total
	b.status = DeriveStatus(b.amountPaid, b.amount)
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	b.orderID = orderID
	return nil
}
