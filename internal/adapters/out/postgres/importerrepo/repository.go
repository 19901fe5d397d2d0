package importerrepo

import (
	"context"
	"errors"

	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormImporterRepository implements ports.ImporterRepository.
type GormImporterRepository struct {
	db *gorm.DB
}

func NewGormImporterRepository(db *gorm.DB) *GormImporterRepository {
	return &GormImporterRepository{db: db}
}

func (r *GormImporterRepository) Get(ctx context.Context, id kernel.UUID) (*importer.Importer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ImporterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("importer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
