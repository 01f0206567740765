package actorrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// GormActorRepository implements ActorRepository using GORM.
type GormActorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB, tracker aggregateTracker) *GormActorRepository {
	return &GormActorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new actor to the database.
func (r *GormActorRepository) Add(ctx context.Context, entity *actor.Actor) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("actor "+entity.ID().String()+" is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
