package jobs

import (
	"context"
	"time"

	"customs/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ResyncHandler re-syncs packages whose last sheet sync failed.
type ResyncHandler interface {
	Handle(ctx context.Context, cmd commands.ResyncPackagesCommand) (commands.ResyncReport, error)
}

// SheetResyncJob periodically retries failed sheet syncs.
// Runs never overlap: a tick is skipped while the previous one is running.
type SheetResyncJob struct {
	handler   ResyncHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSheetResyncJob accepts any schedule robfig/cron understands with an
// optional seconds field, e.g. "@every 1m" or "0 */5 * * * *".
func NewSheetResyncJob(handler ResyncHandler, schedule string, batchSize int, logger *zap.Logger) *SheetResyncJob {
	logger = logger.With(zap.String("component", "sheet_resync_job"))
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))

	ctx, cancel := context.WithCancel(context.Background())
	return &SheetResyncJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (j *SheetResyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Sheet resync job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop cancels a running resync and waits for it to return.
func (j *SheetResyncJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Sheet resync job stopped")
}

func (j *SheetResyncJob) run() {
	cmd, err := commands.NewResyncPackagesCommand(j.batchSize)
	if err != nil {
		j.logger.Error("Invalid sheet resync batch size", zap.Error(err))
		return
	}

	start := time.Now()
	report, err := j.handler.Handle(j.ctx, cmd)
	if err != nil {
		j.logger.Error("Sheet resync failed", zap.Error(err))
		return
	}

	if report.Attempted == 0 {
		return
	}

	j.logger.Info("Sheet resync finished",
		zap.Int("attempted", report.Attempted),
		zap.Int("synced", report.Synced),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", time.Since(start)),
	)
}
