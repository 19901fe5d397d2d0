package ports

import (
	"context"

	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/kernel"
)

// ImporterRepository reads importer configuration. Importers are managed
// elsewhere, so the contract is read-only.
type ImporterRepository interface {
	// Get returns *errs.ObjectNotFoundError when the importer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*importer.Importer, error)
}
