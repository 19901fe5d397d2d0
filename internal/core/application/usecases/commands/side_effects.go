package commands

import (
	"context"

	"go.uber.org/zap"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"
)

// SideEffectPorts are the collaborators invoked after a state change commits.
// None of them can undo or fail the committed change.
type SideEffectPorts struct {
	ActivityLog ports.ActivityLog
	Notifier    ports.Notifier
	Syncer      ports.SheetSyncer
	SyncState   ports.SyncStateRecorder
}

type sideEffectRunner struct {
	ports  SideEffectPorts
	logger *zap.Logger
}

func (r sideEffectRunner) appendActivity(ctx context.Context, packageID kernel.UUID, action string) SideEffectOutcome {
	out := outcomeOf(StepActivityLog, r.ports.ActivityLog.Append(ctx, packageID, action))
	r.report(packageID, out)
	return out
}

func (r sideEffectRunner) notify(
	ctx context.Context,
	pkg shipment.Snapshot,
	notification shipment.NotificationType,
) SideEffectOutcome {
	if notification.IsNone() {
		return skipped(StepNotification)
	}

	out := outcomeOf(StepNotification, r.ports.Notifier.Send(ctx, pkg, notification))
	r.report(pkg.ID, out)
	return out
}

// syncSheet mirrors pkg and keeps its syncPending flag in step with the
// result. A skipped sync clears the flag, since there is no sheet left to
// catch up. The flag write is bookkeeping only; its failure is logged.
func (r sideEffectRunner) syncSheet(ctx context.Context, pkg *shipment.Snapshot) SideEffectOutcome {
	out := outcomeOf(StepSheetSync, r.ports.Syncer.Sync(ctx, *pkg))
	r.report(pkg.ID, out)
	r.markSyncPending(ctx, pkg, out.Failed())
	return out
}

func (r sideEffectRunner) markSyncPending(ctx context.Context, pkg *shipment.Snapshot, pending bool) {
	if pkg.SyncPending == pending {
		return
	}
	r.recordSyncState(ctx, pkg, pending)
}

// recordSyncState writes the flag even when it is unchanged, which refreshes
// the attempt time.
func (r sideEffectRunner) recordSyncState(ctx context.Context, pkg *shipment.Snapshot, pending bool) {
	if err := r.ports.SyncState.SetSyncPending(ctx, pkg.ID, pending); err != nil {
		r.logger.Warn("failed to record sheet sync state",
			zap.String("package_id", pkg.ID.String()),
			zap.Bool("sync_pending", pending),
			zap.Error(err),
		)
		return
	}

	pkg.SyncPending = pending
}

func (r sideEffectRunner) report(packageID kernel.UUID, out SideEffectOutcome) {
	switch {
	case out.Failed():
		r.logger.Warn("side effect failed",
			zap.String("package_id", packageID.String()),
			zap.String("step", string(out.Step)),
			zap.Error(out.Err),
		)
	case out.Skipped:
		r.logger.Debug("side effect skipped",
			zap.String("package_id", packageID.String()),
			zap.String("step", string(out.Step)),
		)
	}
}

// lockPackage acquires the per-package lock. The returned release never
// fails the caller; a release error is logged and the lock expires on its own.
func lockPackage(
	ctx context.Context,
	locker ports.PackageLocker,
	packageID kernel.UUID,
	logger *zap.Logger,
) (func(), error) {
	release, err := locker.Lock(ctx, packageID)
	if err != nil {
		return nil, NewPersistenceError("lock", err)
	}

	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("failed to release package lock",
				zap.String("package_id", packageID.String()),
				zap.Error(err),
			)
		}
	}, nil
}
