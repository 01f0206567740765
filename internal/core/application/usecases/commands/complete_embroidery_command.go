package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrCompleteEmbroideryCommandIsNotConstructed = errors.New(
	"CompleteEmbroideryCommand must be created via NewCompleteEmbroideryCommand constructor",
)

// CompleteEmbroideryCommand represents a request to mark an order's
// embroidery work done, lifting the gate that holds the order in stitching.
type CompleteEmbroideryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteEmbroideryCommand creates an embroidery completion command.
func NewCompleteEmbroideryCommand(orderID kernel.UUID) (CompleteEmbroideryCommand, error) {
	completeCommand := CompleteEmbroideryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := completeCommand.setOrderID(orderID); err != nil {
		return CompleteEmbroideryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteEmbroideryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteEmbroideryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CompleteEmbroideryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteEmbroideryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
