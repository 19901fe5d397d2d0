// Package postgres provides the GORM-based Unit of Work that command handlers
// use to make a package state change durable in one transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	pkg, err := uow.PackageRepository().Get(ctx, id)
//	...
//	if err := uow.PackageRepository().Update(ctx, pkg); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin (or after Commit/Rollback) run directly
// against the connection pool; that is how read-only paths such as the sheet
// resync use them.
//
// Each UnitOfWork instance owns at most one transaction and must not be
// shared between goroutines.
package postgres

import (
	"context"

	"customs/internal/adapters/out/postgres/activityrepo"
	"customs/internal/adapters/out/postgres/importerrepo"
	"customs/internal/adapters/out/postgres/packagerepo"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction if no transaction is open, which
// is the normal case for the deferred rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

// SyncState returns the recorder for the syncPending flag. Outside a
// transaction each call commits on its own.
func (uow *GormUnitOfWork) SyncState() ports.SyncStateRecorder {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ImporterRepository() ports.ImporterRepository {
	return importerrepo.NewGormImporterRepository(uow.conn())
}

// ActivityLog returns a log whose appends commit or roll back with the unit of work.
func (uow *GormUnitOfWork) ActivityLog() ports.ActivityLog {
	return activityrepo.NewGormActivityLog(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many aggregate writes the unit of work recorded.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
