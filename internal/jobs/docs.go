// Package jobs provides scheduled background tasks for the production
// scheduling system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the scheduler depends on.
//
// # Available Jobs
//
// 1. WorkedQuantityReconciliationJob - Runs every five minutes to realign
// the worked-quantity counters on order rows with the processing event log
// 2. SummaryRebuildJob - Runs nightly at 02:00 to rewrite the cached
// per-date summary rows from the allocation grid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, rebuildHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs treat failures as transient: the error is logged and the next
// scheduled run retries from scratch. Failed job starts will stop any
// already running jobs.
package jobs
