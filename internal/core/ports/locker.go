package ports

import (
	"context"

	"customs/internal/core/domain/model/kernel"
)

// ReleaseFunc releases a lock obtained from PackageLocker.
type ReleaseFunc func(ctx context.Context) error

// PackageLocker serializes state changes on the same package, so a later
// change always derives from the earlier one's persisted result.
type PackageLocker interface {
	// Lock blocks until the package lock is held or ctx is done.
	Lock(ctx context.Context, packageID kernel.UUID) (ReleaseFunc, error)
}
