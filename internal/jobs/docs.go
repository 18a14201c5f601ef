// Package jobs provides scheduled background tasks for the application.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReadModelRefreshJob - Periodically re-lists orders from storage into the
// read model, reconciling views after failed refresh-on-write attempts and
// picking up records written out of band.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(readModel, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job defaults to "*/5 * * * * *" (every five seconds); the
// schedule is configurable through READ_MODEL_REFRESH_CRON.
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in place; the
// next tick retries.
package jobs
