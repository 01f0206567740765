package commands

import (
	"context"

	"atelier/internal/core/domain/model/actor"
)

// RegisterActorCommandHandler registers actors in the directory. The name
// rules live in the actor constructor.
type RegisterActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterActorCommandHandler creates a handler for actor registration.
func NewRegisterActorCommandHandler(uowFactory ActorUoWFactory) RegisterActorCommandHandler {
	return RegisterActorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the actor registration command.
func (h *RegisterActorCommandHandler) Handle(ctx context.Context, cmd RegisterActorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newActor, err := actor.NewActor(cmd.ActorID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ActorRepository().Add(ctx, newActor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
