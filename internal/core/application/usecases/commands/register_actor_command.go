package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRegisterActorCommandIsNotConstructed = errors.New(
	"RegisterActorCommand must be created via NewRegisterActorCommand constructor",
)

// RegisterActorCommand represents a request to register a customer, tailor,
// staff member or admin in the actor directory.
type RegisterActorCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	name    string
	role    actor.Role

	guard guard.ConstructorGuard
}

// NewRegisterActorCommand creates an actor registration command.
func NewRegisterActorCommand(actorID kernel.UUID, name string, role actor.Role) (RegisterActorCommand, error) {
	registerCommand := RegisterActorCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setActorID(actorID),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterActorCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterActorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterActorCommandIsNotConstructed)
}

// ActorID returns the identifier to register the actor under.
func (c RegisterActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the actor's display name.
func (c RegisterActorCommand) Name() string {
	return c.name
}

// Role returns the actor's role.
func (c RegisterActorCommand) Role() actor.Role {
	return c.role
}

func (c *RegisterActorCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RegisterActorCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
