package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/ports"
	"customs/internal/pkg/errs"
)

// ResyncReport summarizes one resync run.
type ResyncReport struct {
	Attempted int
	Synced    int
	Skipped   int
	Failed    int
}

// ResyncPackagesCommandHandler re-syncs packages flagged syncPending. Each
// package is reloaded under its lock before syncing, so a resync never pushes
// a snapshot older than one a concurrent transition already synced.
type ResyncPackagesCommandHandler struct {
	uowFactory PackageUoWFactory
	locker     ports.PackageLocker
	effects    sideEffectRunner
	logger     *zap.Logger
}

func NewResyncPackagesCommandHandler(
	uowFactory PackageUoWFactory,
	locker ports.PackageLocker,
	syncer ports.SheetSyncer,
	syncState ports.SyncStateRecorder,
	logger *zap.Logger,
) ResyncPackagesCommandHandler {
	logger = logger.With(zap.String("component", "sheet_resync"))

	return ResyncPackagesCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		effects: sideEffectRunner{
			ports:  SideEffectPorts{Syncer: syncer, SyncState: syncState},
			logger: logger,
		},
		logger: logger,
	}
}

// Handle returns an error only if the pending list cannot be read. Failures
// on individual packages are counted in the report.
func (h ResyncPackagesCommandHandler) Handle(ctx context.Context, cmd ResyncPackagesCommand) (ResyncReport, error) {
	if err := cmd.Validate(); err != nil {
		return ResyncReport{}, err
	}

	pending, err := h.uowFactory.Create().PackageRepository().GetAllSyncPending(ctx, cmd.BatchSize())
	if err != nil {
		return ResyncReport{}, NewPersistenceError("list sync pending", err)
	}

	var report ResyncReport
	for _, pkg := range pending {
		if ctx.Err() != nil {
			break
		}

		report.Attempted++
		out, err := h.resyncOne(ctx, pkg.ID())
		switch {
		case err != nil:
			report.Failed++
			h.logger.Warn("failed to resync package", zap.String("package_id", pkg.ID().String()), zap.Error(err))
		case out.Failed():
			report.Failed++
		case out.Skipped:
			report.Skipped++
		default:
			report.Synced++
		}
	}

	if report.Attempted > 0 {
		h.logger.Info("sheet resync finished",
			zap.Int("attempted", report.Attempted),
			zap.Int("synced", report.Synced),
			zap.Int("skipped", report.Skipped),
			zap.Int("failed", report.Failed),
		)
	}

	return report, nil
}

func (h ResyncPackagesCommandHandler) resyncOne(ctx context.Context, id kernel.UUID) (SideEffectOutcome, error) {
	unlock, err := lockPackage(ctx, h.locker, id, h.logger)
	if err != nil {
		return SideEffectOutcome{}, err
	}
	defer unlock()

	pkg, err := h.uowFactory.Create().PackageRepository().Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return skipped(StepSheetSync), nil
	}
	if err != nil {
		return SideEffectOutcome{}, err
	}

	snapshot := pkg.Snapshot()
	if !snapshot.SyncPending {
		return skipped(StepSheetSync), nil
	}

	out := h.effects.syncSheet(ctx, &snapshot)
	if out.Failed() {
		// Still pending: a fresh attempt time moves it behind packages not yet retried.
		h.effects.recordSyncState(ctx, &snapshot, true)
	}

	return out, nil
}
