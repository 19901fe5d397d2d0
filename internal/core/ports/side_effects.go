package ports

import (
	"context"
	"errors"

	"customs/internal/core/domain/model/shipment"
)

// ErrSideEffectSkipped is returned (possibly wrapped) by a Notifier or
// SheetSyncer that had nothing to do, e.g. the importer has no SMS sender or
// no linked spreadsheet. Callers treat it as a skip, not as a failure.
var ErrSideEffectSkipped = errors.New("side effect skipped")

// Notifier sends a customer-facing message for a clearance milestone.
// Implementations own their timeout policy and must return rather than hang.
type Notifier interface {
	Send(ctx context.Context, pkg shipment.Snapshot, notification shipment.NotificationType) error
}

// SheetSyncer mirrors a package snapshot into the importer's external sheet.
// Syncing the same snapshot twice must yield the same external representation.
type SheetSyncer interface {
	Sync(ctx context.Context, pkg shipment.Snapshot) error
}
