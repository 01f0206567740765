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
	// ErrPaymentIsNotConstructed indicates the Payment was not created
	// through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// Method identifies how a payment was made. Gateway methods require an
// external reference and a passed signature check before the ledger will
// accept them.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCash is an in-shop cash payment.
	MethodCash

	// MethodCard is an in-shop card terminal payment.
	MethodCard

	// MethodGateway is an online payment completed through the payment
	// gateway; it must carry the gateway's payment id and pass signature
	// verification.
	MethodGateway
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "Unknown",
		MethodCash:    "Cash",
		MethodCard:    "Card",
		MethodGateway: "Gateway",
	}
}

// MethodFromString parses a stored or transported method name.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if m != MethodUnknown && str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	switch m {
	case MethodCash, MethodCard, MethodGateway:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// RequiresVerification reports whether payments of this method must pass
// gateway signature verification before being recorded.
func (m Method) RequiresVerification() bool {
	return m == MethodGateway
}

// Payment is an immutable entry in a bill's payment list.
//
// The verified flag is true only for gateway payments that passed the
// signature check; in-shop cash and card payments carry verified=false and
// no external reference.
type Payment struct {
	// id is the payment entry identifier
	id kernel.UUID

	// amount is the received amount (always positive)
	amount kernel.Money

	// method is how the payment was made
	method Method

	// externalRef is the gateway's payment id; empty for in-shop methods
	externalRef string

	// verified is true only after a passed gateway signature check
	verified bool

	// recordedAt is when the ledger accepted the payment
	recordedAt time.Time

	// guard ensures the payment was created via a constructor
	guard guard.ConstructorGuard
}

// NewPayment creates a validated payment entry.
//
// Rules enforced here, before the ledger ever sees the entry:
//   - amount must be strictly positive
//   - gateway payments must carry the gateway payment id and must already be
//     verified; an unverified gateway payment cannot be constructed at all
//   - in-shop payments must not claim verification
func NewPayment(id kernel.UUID, amount kernel.Money, method Method, externalRef string, verified bool) (Payment, error) {
	if err := id.Validate(); err != nil {
		return Payment{}, err
	}
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if amount.IsZero() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("payment amount",
			fmt.Errorf("amount must be greater than 0"))
	}

	if method.RequiresVerification() {
		if externalRef == "" {
			return Payment{}, errs.NewValueIsRequiredError("external payment reference")
		}
		if !verified {
			return Payment{}, errs.NewSecurityError("payment recording",
				"gateway payment constructed without verification")
		}
	} else if verified {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("payment verified flag",
			fmt.Errorf("%s payments cannot be verified", method))
	}

	return Payment{
		id:          id,
		amount:      amount,
		method:      method,
		externalRef: externalRef,
		verified:    verified,
		recordedAt:  time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a payment entry from persistent storage,
// preserving its original timestamp.
func RestorePayment(
	id kernel.UUID,
	amount kernel.Money,
	method Method,
	externalRef string,
	verified bool,
	recordedAt time.Time,
) (Payment, error) {
	p, err := NewPayment(id, amount, method, externalRef, verified)
	if err != nil {
		return Payment{}, err
	}
	p.recordedAt = recordedAt
	return p, nil
}

// Validate ensures the payment was created via a constructor.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment entry identifier.
func (p Payment) ID() kernel.UUID {
	return p.id
}

// Amount returns the received amount.
func (p Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns how the payment was made.
func (p Payment) Method() Method {
	return p.method
}

// ExternalRef returns the gateway payment id, or empty for in-shop methods.
func (p Payment) ExternalRef() string {
	return p.externalRef
}

// Verified reports whether the payment passed gateway verification.
func (p Payment) Verified() bool {
	return p.verified
}

// RecordedAt returns when the ledger accepted the payment.
func (p Payment) RecordedAt() time.Time {
	return p.recordedAt
}
