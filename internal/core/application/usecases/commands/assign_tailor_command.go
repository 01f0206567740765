package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand represents a request to put a tailor on an order.
// Assignment is only possible early in the lifecycle, before stitching work
// starts.
type AssignTailorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tailorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTailorCommand creates a tailor assignment command.
func NewAssignTailorCommand(orderID kernel.UUID, tailorID kernel.UUID) (AssignTailorCommand, error) {
	assignCommand := AssignTailorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setTailorID(tailorID),
	); err != nil {
		return AssignTailorCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTailorCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignTailorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TailorID returns the tailor to assign.
func (c AssignTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

func (c *AssignTailorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}
