package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"atelier/internal/core/application/usecases/commands"
)

// PaymentReminderJob runs the hourly sweep over outstanding bills and sends
// a payment reminder for each one.
type PaymentReminderJob struct {
	handler commands.SendPaymentRemindersCommandHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewPaymentReminderJob creates a new job for payment reminders.
// Uses SendPaymentRemindersCommandHandler to run the sweep once per hour.
func NewPaymentReminderJob(handler commands.SendPaymentRemindersCommandHandler, logger *zap.Logger) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With(zap.String("component", "payment_reminder_job")),
	}
}

// Start begins the payment reminder job on an hourly schedule.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSendPaymentRemindersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.Error("payment reminder sweep failed", zap.Error(err))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("payment reminder job started (running hourly)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("payment reminder job stopped")
}
