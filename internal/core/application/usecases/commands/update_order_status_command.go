package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order along its
// lifecycle. The acting actor and role decide whether the transition is
// permitted; force requests an audited override that skips the usual
// transition rules.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actorID   kernel.UUID
	role      actor.Role
	force     bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status transition command.
// Validates the order id, the target status and the acting identity.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actorID kernel.UUID,
	role actor.Role,
	force bool,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
		statusCommand.setActor(actorID, role),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ActorID returns the acting actor's identifier.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the capacity the actor acts in.
func (c UpdateOrderStatusCommand) Role() actor.Role {
	return c.role
}

// Force reports whether an audited override was requested.
func (c UpdateOrderStatusCommand) Force() bool {
	return c.force
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actorID kernel.UUID, role actor.Role) error {
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
