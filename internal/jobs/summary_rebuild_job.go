package jobs

import (
	"context"
	"log/slog"
	"time"

	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// Summary rebuild window around today, in days. The board is rarely
// consulted further out than a quarter.
const (
	summaryRebuildDaysBack    = 30
	summaryRebuildDaysForward = 90
)

// SummaryRebuildJob rewrites the cached per-date summary rows from the
// allocation grid every night. Summaries are maintained transactionally
// on every grid change; the nightly rebuild repairs any drift.
type SummaryRebuildJob struct {
	handler commands.RebuildSummariesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSummaryRebuildJob creates a new nightly summary rebuild job.
func NewSummaryRebuildJob(
	handler commands.RebuildSummariesCommandHandler,
	logger *slog.Logger,
) *SummaryRebuildJob {
	return &SummaryRebuildJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "summary_rebuild_job"),
	}
}

// Start schedules the rebuild for 02:00 every night.
func (j *SummaryRebuildJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()

		today := kernel.DateFromTime(time.Now())
		cmd, cmdErr := commands.NewRebuildSummariesCommand(
			today.AddDays(-summaryRebuildDaysBack),
			today.AddDays(summaryRebuildDaysForward),
		)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Summary rebuild window is invalid", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Summary rebuild failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Summary rebuild job started (running nightly at 02:00)")
	return nil
}

// Stop stops the summary rebuild job.
func (j *SummaryRebuildJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Summary rebuild job stopped")
}
