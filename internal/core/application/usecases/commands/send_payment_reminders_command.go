package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrSendPaymentRemindersCommandIsNotConstructed = errors.New(
	"SendPaymentRemindersCommand must be created via NewSendPaymentRemindersCommand constructor",
)

// SendPaymentRemindersCommand triggers a reminder sweep over all bills that
// are not yet fully paid. Each outstanding bill produces one payment
// reminder notification.
//
// Example:
//
//	cmd := NewSendPaymentRemindersCommand()
//	handler := NewSendPaymentRemindersCommandHandler(uowFactory, publisher, logger)
//	err := handler.Handle(ctx, cmd)
type SendPaymentRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendPaymentRemindersCommand creates a new command to trigger the sweep.
// This is a parameterless command; the handler finds the outstanding bills.
func NewSendPaymentRemindersCommand() SendPaymentRemindersCommand {
	return SendPaymentRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SendPaymentRemindersCommand) Validate() error {
	return c.guard.Validate(
		ErrSendPaymentRemindersCommandIsNotConstructed,
	)
}
