package actor

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not
	// created through a constructor function.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor")
)

// Actor represents a person known to the shop: a customer, a tailor, or a
// staff/admin user. The core consults actors for two checks only — that a
// customer exists before an order is created, and that an assignee really is
// a tailor — so the aggregate carries just identity, display name and role.
type Actor struct {
	// id is the unique identifier for the actor
	id kernel.UUID

	// name is the display name
	name string

	// role is the actor's capacity in the system
	role Role

	// guard ensures the actor was created via a constructor
	guard guard.ConstructorGuard
}

// NewActor creates a new Actor with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must not be empty)
//   - role: one of the valid roles
//
// Returns the actor or an aggregated validation error.
func NewActor(id kernel.UUID, name string, role Role) (*Actor, error) {
	a := &Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActor reconstructs an Actor from persistent storage.
// The restored actor behaves identically to a newly created one.
func RestoreActor(id kernel.UUID, name string, role Role) (*Actor, error) {
	return NewActor(id, name, role)
}

// Validate ensures the Actor instance was properly constructed.
func (a *Actor) Validate() error {
	if a == nil {
		return ErrActorIsNotConstructed
	}
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// IsEqual compares two actors by their unique identifiers.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Role returns the actor's role.
func (a *Actor) Role() Role {
	return a.role
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
