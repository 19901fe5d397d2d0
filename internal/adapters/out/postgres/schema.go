package postgres

import (
	"customs/internal/adapters/out/postgres/activityrepo"
	"customs/internal/adapters/out/postgres/importerrepo"
	"customs/internal/adapters/out/postgres/packagerepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns or reads.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&importerrepo.ImporterDTO{},
		&packagerepo.PackageDTO{},
		&packagerepo.ItemDTO{},
		&activityrepo.EntryDTO{},
	)
}
