package jobs

import (
	"fmt"
	"log/slog"

	"produzione/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workedQuantityJob *WorkedQuantityReconciliationJob
	summaryRebuildJob *SummaryRebuildJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileHandler commands.ReconcileWorkedQuantitiesCommandHandler,
	rebuildHandler commands.RebuildSummariesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workedQuantityJob: NewWorkedQuantityReconciliationJob(reconcileHandler, logger),
		summaryRebuildJob: NewSummaryRebuildJob(rebuildHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workedQuantityJob.Start(); err != nil {
		return fmt.Errorf("failed to start worked quantity reconciliation job: %w", err)
	}

	if err := jm.summaryRebuildJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.workedQuantityJob.Stop()
		return fmt.Errorf("failed to start summary rebuild job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workedQuantityJob.Stop()
	jm.summaryRebuildJob.Stop()
}
