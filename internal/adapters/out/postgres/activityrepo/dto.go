// Package activityrepo stores the append-only package activity log.
package activityrepo

import (
	"time"

	"customs/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

// EntryDTO is one row of activity_log. Rows are inserted, never updated.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_package_created,priority:1"`
	Action    string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_activity_package_created,priority:2"`
}

func (EntryDTO) TableName() string {
	return "activity_log"
}

func fromDomain(e activity.Entry) EntryDTO {
	return EntryDTO{
		ID:        e.ID().Bytes(),
		PackageID: e.PackageID().Bytes(),
		Action:    e.Action(),
		CreatedAt: e.CreatedAt(),
	}
}
