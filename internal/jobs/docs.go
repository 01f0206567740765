// Package jobs provides scheduled background tasks for the atelier.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the billing workflow.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs hourly to send a reminder for every bill that
// is not yet fully paid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the cron expression "0 * * * *": once an hour, on
// the hour. Reminders are nudges, not invoices; hourly is frequent enough.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A failed job start
// stops any already running jobs.
package jobs
