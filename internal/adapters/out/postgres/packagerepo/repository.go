package packagerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements ports.PackageRepository and
// ports.SyncStateRecorder using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the package row and its items.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *shipment.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column in a single statement guarded by the
// version the aggregate was loaded with. Items are immutable and not touched.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *shipment.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.PersistedVersion()).
		Select("*").
		Omit("id", "sync_attempted_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPackageRepository) missOrConflict(ctx context.Context, aggregate *shipment.Package) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PackageDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	return errs.NewVersionIsInvalidError(
		"package",
		fmt.Errorf("package %s was modified since version %d", aggregate.ID(), aggregate.PersistedVersion()),
	)
}

// Get retrieves a package with its items.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSyncPending returns up to limit packages flagged for re-sync. Packages
// never attempted come first, then the least recently attempted.
func (r *GormPackageRepository) GetAllSyncPending(ctx context.Context, limit int) ([]*shipment.Package, error) {
	var dtos []PackageDTO
	if err := r.withItems(ctx).
		Where("sync_pending = ?", true).
		Order("sync_attempted_at ASC NULLS FIRST").
		Order("updated_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*shipment.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

// SetSyncPending writes the bookkeeping flag and stamps the attempt time. It
// leaves version and updated_at alone so it never conflicts with a concurrent
// transition.
func (r *GormPackageRepository) SetSyncPending(ctx context.Context, id kernel.UUID, pending bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumns(map[string]any{
			"sync_pending":      pending,
			"sync_attempted_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", id.String())
	}

	return nil
}

func (r *GormPackageRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
