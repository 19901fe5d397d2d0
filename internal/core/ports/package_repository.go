// Package ports defines the contracts between the customs core and its
// infrastructure: persistence, activity log, notification, sync and locking.
package ports

import (
	"context"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package. The package must be valid and not exist yet.
	Add(ctx context.Context, aggregate *shipment.Package) error

	// Update writes the full package state as one atomic, conditional write.
	// The write only applies if the stored version still equals
	// aggregate.PersistedVersion(), the version it was loaded with; otherwise
	// it fails with *errs.VersionIsInvalidError. The stored version becomes
	// aggregate.Version().
	// Returns *errs.ObjectNotFoundError when the package does not exist.
	Update(ctx context.Context, aggregate *shipment.Package) error

	// Get retrieves a package by its identifier.
	// Returns *errs.ObjectNotFoundError when nothing matches.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error)

	// GetAllSyncPending returns up to limit packages whose last sheet sync
	// failed, least recently attempted first.
	GetAllSyncPending(ctx context.Context, limit int) ([]*shipment.Package, error)
}

// SyncStateRecorder records whether a package's sheet row is out of date.
// Every call also stamps the attempt time that orders GetAllSyncPending. It
// never touches the version or business fields.
type SyncStateRecorder interface {
	SetSyncPending(ctx context.Context, id kernel.UUID, pending bool) error
}
