package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"customs/internal/core/domain/model/activity"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"
	"customs/internal/pkg/errs"
)

// SetPaymentStatusCommandHandler toggles payment under the same per-package
// lock as status transitions. It always writes exactly one activity entry and
// never notifies or syncs, even if the value did not change.
type SetPaymentStatusCommandHandler struct {
	uowFactory  PackageUoWFactory
	locker      ports.PackageLocker
	activityLog ports.ActivityLog
	logger      *zap.Logger
}

func NewSetPaymentStatusCommandHandler(
	uowFactory PackageUoWFactory,
	locker ports.PackageLocker,
	activityLog ports.ActivityLog,
	logger *zap.Logger,
) SetPaymentStatusCommandHandler {
	return SetPaymentStatusCommandHandler{
		uowFactory:  uowFactory,
		locker:      locker,
		activityLog: activityLog,
		logger:      logger.With(zap.String("component", "payment_toggle")),
	}
}

func (h SetPaymentStatusCommandHandler) Handle(ctx context.Context, cmd SetPaymentStatusCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	unlock, err := lockPackage(ctx, h.locker, cmd.PackageID(), h.logger)
	if err != nil {
		return Result{}, err
	}
	defer unlock()

	snapshot, err := h.persist(ctx, cmd)
	if err != nil {
		if errors.Is(err, ErrPersistenceFailure) {
			h.logger.Error("failed to persist payment status",
				zap.String("package_id", cmd.PackageID().String()),
				zap.Error(err),
			)
		}
		return Result{}, err
	}

	runner := sideEffectRunner{ports: SideEffectPorts{ActivityLog: h.activityLog}, logger: h.logger}

	return Result{
		Package: snapshot,
		SideEffects: []SideEffectOutcome{
			runner.appendActivity(context.WithoutCancel(ctx), snapshot.ID, activity.PaymentMessage(snapshot.PaymentStatus)),
		},
	}, nil
}

func (h SetPaymentStatusCommandHandler) persist(ctx context.Context, cmd SetPaymentStatusCommand) (shipment.Snapshot, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()

	pkg, err := repo.Get(ctx, cmd.PackageID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return shipment.Snapshot{}, err
	}
	if err != nil {
		return shipment.Snapshot{}, NewPersistenceError("load", err)
	}

	if err = pkg.SetPaymentStatus(cmd.PaymentStatus()); err != nil {
		return shipment.Snapshot{}, err
	}

	if err = repo.Update(ctx, pkg); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("update", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("commit", err)
	}

	return pkg.Snapshot(), nil
}
