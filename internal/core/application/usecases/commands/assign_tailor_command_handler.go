package commands

import (
	"context"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/pkg/errs"
)

// AssignTailorCommandHandler handles tailor assignment.
//
// The referenced actor must exist and hold the tailor role; an actor of any
// other role is reported as not found so callers cannot probe the actor
// directory through this command. The stage rules and the idempotent
// same-tailor case live in the order aggregate.
type AssignTailorCommandHandler struct {
	uowFactory OrderActorUoWFactory
}

// NewAssignTailorCommandHandler creates a handler for tailor assignment.
func NewAssignTailorCommandHandler(uowFactory OrderActorUoWFactory) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor assignment command.
func (h *AssignTailorCommandHandler) Handle(ctx context.Context, cmd AssignTailorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tailor, err := uow.ActorRepository().Get(ctx, cmd.TailorID())
	if err != nil {
		return err
	}
	if tailor.Role() != actor.RoleTailor {
		return errs.NewObjectNotFoundError("tailorID", cmd.TailorID().String())
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignTailor(cmd.TailorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
