package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	readModelRefreshJob *ReadModelRefreshJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(refresher Refresher, refreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		readModelRefreshJob: NewReadModelRefreshJob(refresher, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.readModelRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start read model refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.readModelRefreshJob.Stop()
}
