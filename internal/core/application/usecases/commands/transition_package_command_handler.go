package commands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"customs/internal/core/domain/model/activity"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"
	"customs/internal/pkg/errs"
)

// TransitionPackageCommandHandler is the status transition engine.
//
// For one command it:
//  1. takes the per-package lock, so concurrent changes to the same package
//     apply one after the other
//  2. loads the package, derives dates and payment from the requested status
//     and writes the whole new state in one conditional update
//  3. after commit, appends the activity entry, sends the milestone
//     notification and syncs the external sheet, in that order
//
// Steps 1 and 2 are all-or-nothing and their errors are returned. Step 3 is
// best-effort: failures are logged and reported in TransitionResult.SideEffects,
// never returned. Step 3 runs detached from ctx cancellation.
//
// Example:
//
//	handler := NewTransitionPackageCommandHandler(uowFactory, locker, effects, logger)
//	cmd, _ := NewTransitionPackageCommand(packageID, shipment.CustomsCleared)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown package
//	case errors.Is(err, ErrPersistenceFailure):
//	    // nothing changed, safe to retry
//	case result.Degraded():
//	    // state changed, some side effect failed
//	}
type TransitionPackageCommandHandler struct {
	uowFactory PackageUoWFactory
	locker     ports.PackageLocker
	effects    sideEffectRunner
	logger     *zap.Logger
	now        func() time.Time
}

func NewTransitionPackageCommandHandler(
	uowFactory PackageUoWFactory,
	locker ports.PackageLocker,
	effects SideEffectPorts,
	logger *zap.Logger,
) TransitionPackageCommandHandler {
	logger = logger.With(zap.String("component", "transition_engine"))

	return TransitionPackageCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		effects:    sideEffectRunner{ports: effects, logger: logger},
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler that stamps dates using now.
func (h TransitionPackageCommandHandler) WithClock(now func() time.Time) TransitionPackageCommandHandler {
	h.now = now
	return h
}

// Handle applies the command. See the type documentation for the error contract.
func (h TransitionPackageCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionPackageCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	unlock, err := lockPackage(ctx, h.locker, cmd.PackageID(), h.logger)
	if err != nil {
		h.logger.Error("failed to lock package", zap.String("package_id", cmd.PackageID().String()), zap.Error(err))
		return TransitionResult{}, err
	}
	defer unlock()

	snapshot, outcome, err := h.persist(ctx, cmd)
	if err != nil {
		if errors.Is(err, ErrPersistenceFailure) {
			h.logger.Error("failed to persist transition",
				zap.String("package_id", cmd.PackageID().String()),
				zap.String("target", cmd.Target().String()),
				zap.Error(err),
			)
		}
		return TransitionResult{}, err
	}

	h.logger.Info("package status changed",
		zap.String("package_id", snapshot.ID.String()),
		zap.String("from", outcome.From.String()),
		zap.String("to", outcome.To.String()),
		zap.Bool("payment_forced", outcome.PaymentForced),
	)

	// The change is committed. A caller that goes away now must not take its
	// side effects with it; adapters bound their own calls.
	effCtx := context.WithoutCancel(ctx)

	result := TransitionResult{Transition: outcome}
	result.SideEffects = []SideEffectOutcome{
		h.effects.appendActivity(effCtx, snapshot.ID, activity.StatusChangedMessage(outcome.To)),
		h.effects.notify(effCtx, snapshot, outcome.Notification),
		h.effects.syncSheet(effCtx, &snapshot),
	}
	result.Package = snapshot

	return result, nil
}

func (h TransitionPackageCommandHandler) persist(
	ctx context.Context,
	cmd TransitionPackageCommand,
) (shipment.Snapshot, shipment.TransitionOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, NewPersistenceError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()

	pkg, err := repo.Get(ctx, cmd.PackageID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, err
	}
	if err != nil {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, NewPersistenceError("load", err)
	}

	outcome, err := pkg.Transition(cmd.Target(), h.now())
	if err != nil {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, err
	}

	if err = repo.Update(ctx, pkg); err != nil {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, NewPersistenceError("update", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Snapshot{}, shipment.TransitionOutcome{}, NewPersistenceError("commit", err)
	}

	return pkg.Snapshot(), outcome, nil
}
