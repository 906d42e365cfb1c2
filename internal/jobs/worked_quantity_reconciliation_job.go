package jobs

import (
	"context"
	"log/slog"

	"produzione/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkedQuantityReconciliationJob periodically realigns the denormalized
// worked-quantity counters on order rows with the processing event log.
// Runs every five minutes; the event log stays authoritative in between.
type WorkedQuantityReconciliationJob struct {
	handler commands.ReconcileWorkedQuantitiesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkedQuantityReconciliationJob creates a new reconciliation job.
func NewWorkedQuantityReconciliationJob(
	handler commands.ReconcileWorkedQuantitiesCommandHandler,
	logger *slog.Logger,
) *WorkedQuantityReconciliationJob {
	return &WorkedQuantityReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "worked_quantity_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every five minutes.
func (j *WorkedQuantityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileWorkedQuantitiesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Worked quantity reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Worked quantity reconciliation job started (running every five minutes)")
	return nil
}

// Stop stops the reconciliation job.
func (j *WorkedQuantityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Worked quantity reconciliation job stopped")
}
