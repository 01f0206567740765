// Package bill contains the Bill aggregate: the billing ledger linked 1:1
// to an order.
//
// A bill copies the order total as its immutable amount at generation time
// and then tracks an ordered, append-only payment list. The two facts
// everyone else reads — amountPaid and settlement status — are derived, not
// stored opinions: every mutating method recomputes them from the payment
// list in the same step as the list change, and RestoreBill re-derives them
// on load instead of trusting persisted values.
//
// Gateway payments enter the ledger only after signature verification (the
// Payment constructor refuses unverified gateway entries outright), and an
// external payment id is recorded at most once, which makes verified
// callback replays idempotent. Overpayment is accepted and surfaced through
// Overpaid rather than rejected.
package bill
