// Package actorrepo provides data transfer objects and mapping functions for actor persistence.
package actorrepo

import (
	"github.com/google/uuid"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
)

// ActorDTO represents the database structure for persisting actors.
type ActorDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Role int       `gorm:"not null"`
}

// TableName specifies the database table name for actor entities.
func (ActorDTO) TableName() string {
	return "actors"
}

// fromDomain converts an actor domain entity to its database representation.
func fromDomain(entity *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:   entity.ID().Bytes(),
		Name: entity.Name(),
		Role: int(entity.Role()),
	}
}

// toDomain converts a database DTO to an actor domain entity.
func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return actor.RestoreActor(id, dto.Name, actor.Role(dto.Role))
}
