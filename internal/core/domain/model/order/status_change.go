package order

import (
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
)

// StatusChange is one entry of the order's status audit trail: who moved the
// order, from where to where, when, and whether the administrative override
// was used. Every transition — including forced ones — produces an entry, so
// backward corrections are never silent.
//
// Entries are append-only. The aggregate accumulates new entries while in
// memory; the repository persists and then discards them on update.
type StatusChange struct {
	// ID is the audit entry identifier
	ID kernel.UUID

	// From is the status before the transition
	From Status

	// To is the status after the transition
	To Status

	// ActorID identifies who performed the transition
	ActorID kernel.UUID

	// Role is the capacity in which the actor acted
	Role actor.Role

	// Forced marks an administrative override
	Forced bool

	// At is when the transition happened
	At time.Time
}

func newStatusChange(from, to Status, actorID kernel.UUID, role actor.Role, forced bool) StatusChange {
	return StatusChange{
		ID:      kernel.NewUUID(),
		From:    from,
		To:      to,
		ActorID: actorID,
		Role:    role,
		Forced:  forced,
		At:      time.Now().UTC(),
	}
}
