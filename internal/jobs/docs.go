// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the bill change workflow.
//
// # Available Jobs
//
// 1. PendingRequestDigestJob - Periodically logs a digest of the day's
// change requests so approvers notice a growing backlog.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the configured jobs
//	jobManager := jobs.NewJobManager(digestJob)
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
// The digest job takes its cron expression from configuration. The
// expression includes a seconds field.
//
// # Error Handling
//
// - The digest job logs query failures and keeps its schedule
// - Failed job starts report the failing job by name
package jobs
