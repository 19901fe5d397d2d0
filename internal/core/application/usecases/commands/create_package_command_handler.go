package commands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"customs/internal/core/domain/model/activity"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/domain/services"
	"customs/internal/pkg/errs"
)

// CreatePackageCommandHandler computes fees for the declared items and stores
// the package in Received status together with its "Package received" entry.
// It is not a transition: no notification is sent and nothing is synced.
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
	calculator services.FeeCalculator
	logger     *zap.Logger
	now        func() time.Time
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory, logger *zap.Logger) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewFeeCalculator(),
		logger:     logger.With(zap.String("component", "package_intake")),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler that uses now for defaulted dates.
func (h CreatePackageCommandHandler) WithClock(now func() time.Time) CreatePackageCommandHandler {
	h.now = now
	return h
}

func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (shipment.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Snapshot{}, err
	}

	details := cmd.Details()
	fees, err := h.calculator.Calculate(details.Items, details.DeclaredValue)
	if err != nil {
		return shipment.Snapshot{}, err
	}

	receivedDate := cmd.ReceivedDate()
	if receivedDate.IsZero() {
		receivedDate = h.now()
	}

	pkg, err := shipment.NewPackage(cmd.PackageID(), cmd.ImporterID(), details, fees, receivedDate)
	if err != nil {
		return shipment.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.ImporterRepository().Get(ctx, cmd.ImporterID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return shipment.Snapshot{}, err
	}
	if err != nil {
		return shipment.Snapshot{}, NewPersistenceError("load importer", err)
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("insert", err)
	}

	if err = uow.ActivityLog().Append(ctx, pkg.ID(), activity.MessagePackageReceived); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("activity", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Snapshot{}, NewPersistenceError("commit", err)
	}

	h.logger.Info("package received",
		zap.String("package_id", pkg.ID().String()),
		zap.String("importer_id", pkg.ImporterID().String()),
		zap.String("tracking_number", pkg.TrackingNumber()),
		zap.String("total_fees", fees.Total().String()),
	)

	return pkg.Snapshot(), nil
}
