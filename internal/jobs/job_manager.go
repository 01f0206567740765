package jobs

import (
	"fmt"

	"go.uber.org/zap"

	"atelier/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReminderJob *PaymentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	remindersHandler commands.SendPaymentRemindersCommandHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		paymentReminderJob: NewPaymentReminderJob(remindersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
}
