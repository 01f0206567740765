package commands

import (
	"errors"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid      = errors.New("payment amount must be greater than 0")
	ErrExternalPaymentIDIsRequired = errors.New("external payment id is required for gateway payments")
)

// RecordPaymentCommand represents a request to append a payment to a bill.
//
// In-shop methods (cash, card) carry just the amount. Gateway payments carry
// the callback triple: external order id, external payment id and signature;
// the handler verifies the signature before any state changes.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID         kernel.UUID
	billID            kernel.UUID
	amount            int64
	method            bill.Method
	externalOrderID   string
	externalPaymentID string
	signature         string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment recording command.
// Validates identifiers, a positive amount, a known method and, for gateway
// payments, the presence of the external payment id.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	billID kernel.UUID,
	amount int64,
	method bill.Method,
	externalOrderID string,
	externalPaymentID string,
	signature string,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		externalOrderID: externalOrderID,
		signature:       signature,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setBillID(billID),
		paymentCommand.setAmount(amount),
		paymentCommand.setMethod(method),
		paymentCommand.setExternalPaymentID(method, externalPaymentID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier to record the payment under.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// BillID returns the target bill's identifier.
func (c RecordPaymentCommand) BillID() kernel.UUID {
	return c.billID
}

// Amount returns the payment amount in minor units.
func (c RecordPaymentCommand) Amount() int64 {
	return c.amount
}

// Method returns the payment method.
func (c RecordPaymentCommand) Method() bill.Method {
	return c.method
}

// ExternalOrderID returns the gateway's order reference, empty for in-shop
// methods.
func (c RecordPaymentCommand) ExternalOrderID() string {
	return c.externalOrderID
}

// ExternalPaymentID returns the gateway's payment reference, empty for
// in-shop methods.
func (c RecordPaymentCommand) ExternalPaymentID() string {
	return c.externalPaymentID
}

// Signature returns the gateway callback signature, empty for in-shop
// methods.
func (c RecordPaymentCommand) Signature() string {
	return c.signature
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setBillID(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}

	c.billID = billID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrPaymentAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method bill.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setExternalPaymentID(method bill.Method, externalPaymentID string) error {
	if method.RequiresVerification() && externalPaymentID == "" {
		return ErrExternalPaymentIDIsRequired
	}

	c.externalPaymentID = externalPaymentID
	return nil
}
