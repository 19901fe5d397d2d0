// Package importerrepo reads importer configuration. Rows are written by the
// importer management service; this service only reads them.
package importerrepo

import (
	"customs/internal/core/domain/model/importer"
	"customs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ImporterDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	SMSEnabled       bool      `gorm:"column:sms_enabled;not null;default:false"`
	SMSSender        string    `gorm:"column:sms_sender;type:varchar(32)"`
	SheetEnabled     bool      `gorm:"not null;default:false"`
	SpreadsheetID    string    `gorm:"type:varchar(128)"`
	SheetName        string    `gorm:"type:varchar(128)"`
	SheetAccessToken string    `gorm:"type:text"`
}

func (ImporterDTO) TableName() string {
	return "importers"
}

func toDomain(dto ImporterDTO) (*importer.Importer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return importer.RestoreImporter(
		id,
		dto.Name,
		importer.SMSSettings{Enabled: dto.SMSEnabled, Sender: dto.SMSSender},
		importer.SheetSettings{
			Enabled:       dto.SheetEnabled,
			SpreadsheetID: dto.SpreadsheetID,
			SheetName:     dto.SheetName,
			AccessToken:   dto.SheetAccessToken,
		},
	)
}
