// Package jobs provides scheduled background tasks for the customs service.
//
// Jobs run on github.com/robfig/cron/v3 schedules with an optional seconds
// field.
//
// # Available Jobs
//
// SheetResyncJob retries spreadsheet syncs for packages flagged syncPending
// after a failed post-transition sync. It runs on SHEET_RESYNC_SCHEDULE
// (every minute by default) and processes at most SHEET_RESYNC_BATCH
// packages per run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(resyncHandler, "@every 1m", 100, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Per-package sync
// failures leave the package flagged and are only counted in the run summary.
package jobs
