package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to remove a recorded payment
// from a bill. Only administrators may adjust the ledger this way; the
// order itself is never touched.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	billID    kernel.UUID
	paymentID kernel.UUID
	actorID   kernel.UUID
	role      actor.Role

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a refund command.
func NewRefundPaymentCommand(
	billID kernel.UUID,
	paymentID kernel.UUID,
	actorID kernel.UUID,
	role actor.Role,
) (RefundPaymentCommand, error) {
	refundCommand := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setBillID(billID),
		refundCommand.setPaymentID(paymentID),
		refundCommand.setActor(actorID, role),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// BillID returns the target bill's identifier.
func (c RefundPaymentCommand) BillID() kernel.UUID {
	return c.billID
}

// PaymentID returns the payment to remove.
func (c RefundPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ActorID returns the acting actor's identifier.
func (c RefundPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the capacity the actor acts in.
func (c RefundPaymentCommand) Role() actor.Role {
	return c.role
}

func (c *RefundPaymentCommand) setBillID(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}

	c.billID = billID
	return nil
}

func (c *RefundPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RefundPaymentCommand) setActor(actorID kernel.UUID, role actor.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.role = role
	return nil
}
