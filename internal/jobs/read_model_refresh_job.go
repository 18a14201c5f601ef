package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule reloads the read model every five seconds.
const DefaultRefreshSchedule = "*/5 * * * * *"

// Refresher reloads the read model snapshot from storage.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ReadModelRefreshJob periodically reconciles the read model with storage.
// The refresh-on-write path keeps the snapshot current in the common case;
// this job picks up writes whose follow-up refresh failed and any records
// written out of band.
type ReadModelRefreshJob struct {
	refresher Refresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewReadModelRefreshJob creates a refresh job with the given cron schedule.
// An empty schedule falls back to DefaultRefreshSchedule.
func NewReadModelRefreshJob(refresher Refresher, schedule string, logger *slog.Logger) *ReadModelRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &ReadModelRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "read_model_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *ReadModelRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Read model refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Read model refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *ReadModelRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Read model refresh job stopped")
}
