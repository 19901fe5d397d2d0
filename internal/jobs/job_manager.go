package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sheetResyncJob *SheetResyncJob
}

// NewJobManager creates a job manager owning the sheet resync job.
func NewJobManager(resyncHandler ResyncHandler, schedule string, batchSize int, logger *zap.Logger) *JobManager {
	return &JobManager{
		sheetResyncJob: NewSheetResyncJob(resyncHandler, schedule, batchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sheetResyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start sheet resync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.sheetResyncJob.Stop()
}
