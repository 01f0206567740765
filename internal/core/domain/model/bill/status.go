package bill

import (
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Status represents the settlement state of a bill. It is never stored as an
// independent fact: the aggregate derives it from (amountPaid, amount) after
// every mutation, so it can never drift from the payment list.
//
//	Unpaid   — amountPaid == 0
//	Partial  — 0 < amountPaid < amount
//	Paid     — amountPaid >= amount
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusUnpaid means no money has been received.
	StatusUnpaid

	// StatusPartial means some, but not all, of the amount is covered.
	StatusPartial

	// StatusPaid means the bill is settled; no further payments are accepted.
	StatusPaid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusUnpaid:  "Unpaid",
		StatusPartial: "Partial",
		StatusPaid:    "Paid",
	}
}

// DeriveStatus computes the settlement status from the paid and owed amounts.
// It is the single source of truth for the amountPaid/status invariant.
func DeriveStatus(amountPaid, amount kernel.Money) Status {
	switch {
	case amountPaid.IsZero():
		return StatusUnpaid
	case amountPaid.GreaterOrEqual(amount):
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case StatusUnpaid, StatusPartial, StatusPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("bill status",
			fmt.Errorf("%d is not a valid bill status", s))
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
