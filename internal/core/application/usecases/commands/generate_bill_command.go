package commands

import (
	"errors"

	"atelier/internal/core/domain/model/bill"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGenerateBillCommandIsNotConstructed = errors.New(
	"GenerateBillCommand must be created via NewGenerateBillCommand constructor",
)

// GenerateBillCommand represents a request to open the bill for an order.
// Bills are created on demand and exactly once per order; a repeated request
// leaves the existing bill untouched. The bill id is only used when this
// request is the one that actually creates the bill. The intended payment
// method decides whether a gateway checkout session is opened alongside.
type GenerateBillCommand struct { //nolint:recvcheck //using for validation
	billID  kernel.UUID
	orderID kernel.UUID
	method  bill.Method

	guard guard.ConstructorGuard
}

// NewGenerateBillCommand creates a bill generation command.
func NewGenerateBillCommand(billID kernel.UUID, orderID kernel.UUID, method bill.Method) (GenerateBillCommand, error) {
	billCommand := GenerateBillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		billCommand.setBillID(billID),
		billCommand.setOrderID(orderID),
		billCommand.setMethod(method),
	); err != nil {
		return GenerateBillCommand{}, err
	}

	return billCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateBillCommand) Validate() error {
	return c.guard.Validate(ErrGenerateBillCommandIsNotConstructed)
}

// BillID returns the identifier to create the bill under.
func (c GenerateBillCommand) BillID() kernel.UUID {
	return c.billID
}

// OrderID returns the billed order's identifier.
func (c GenerateBillCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method the customer intends to settle with.
func (c GenerateBillCommand) Method() bill.Method {
	return c.method
}

func (c *GenerateBillCommand) setBillID(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}

	c.billID = billID
	return nil
}

func (c *GenerateBillCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateBillCommand) setMethod(method bill.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
