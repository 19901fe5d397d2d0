package ports

import (
	"context"

	"customs/internal/core/domain/model/kernel"
)

// ActivityLog appends immutable audit entries for package state changes.
type ActivityLog interface {
	// Append records action for the package, timestamped by the log.
	Append(ctx context.Context, packageID kernel.UUID, action string) error
}
