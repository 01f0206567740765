package ports

import (
	"context"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for actors.
// Actors back customer-existence checks on order creation and role checks
// on tailor assignment.
type ActorRepository interface {
	// Add persists a new actor to storage.
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Get retrieves an actor by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
}
