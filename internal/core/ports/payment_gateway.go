package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// PaymentSession is the hosted checkout created at the gateway for a bill.
type PaymentSession struct {
	ExternalOrderID string
	CheckoutURL     string
}

// GatewayCallback carries the fields of a gateway payment callback that
// participate in signature verification.
type GatewayCallback struct {
	ExternalOrderID   string
	ExternalPaymentID string
	Signature         string
}

// PaymentGateway integrates with the hosted payment provider.
//
// Verify must pass before any ledger mutation happens; a callback with a bad
// signature is rejected with a security error and leaves no trace beyond a
// log line.
type PaymentGateway interface {
	// CreateSession opens a checkout session at the gateway for the given
	// bill amount. Gateway outages surface as external unavailable errors.
	CreateSession(ctx context.Context, billID kernel.UUID, amount kernel.Money) (PaymentSession, error)

	// Verify checks the callback signature against the shared secret.
	// Returns a security error on mismatch and nil on success.
	Verify(callback GatewayCallback) error
}
