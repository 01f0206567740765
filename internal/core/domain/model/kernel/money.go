package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
// Monetary values are rejected outright, never clamped to zero.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount in the
// shop's single currency. Amounts are whole currency units; the system is
// deliberately single-currency (see the billing design), so Money carries no
// currency code.
//
// The zero value of Money is a valid zero amount, which keeps arithmetic over
// optional charges (embroidery disabled, customer-provided fabric) natural.
// Negative amounts cannot be constructed.
//
// Money is immutable: arithmetic methods return new values.
//
// Example usage:
//
//	price, err := kernel.NewMoney(800)
//	if err != nil {
//	    // handle negative amount
//	}
//	total := price.MulQty(2).Add(kernel.Zero())
type Money struct {
	amount int64
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{}
}

// NewMoney creates a Money value from a whole-unit amount.
//
// Returns:
//   - Money: the constructed value if amount >= 0
//   - error: ErrMoneyIsNegative for negative input
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw whole-unit amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulQty returns the amount multiplied by a unit count.
// Negative quantities must be rejected by the caller before pricing;
// multiplication itself does not validate.
func (m Money) MulQty(qty int) Money {
	return Money{amount: m.amount * int64(qty)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// Less reports whether m < other.
func (m Money) Less(other Money) bool {
	return m.amount < other.amount
}

// String returns the amount formatted for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
