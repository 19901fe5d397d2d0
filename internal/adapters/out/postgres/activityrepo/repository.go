package activityrepo

import (
	"context"
	"time"

	"customs/internal/core/domain/model/activity"
	"customs/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityLog implements ports.ActivityLog. Entries are timestamped with
// the log's own clock at append time.
type GormActivityLog struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormActivityLog(db *gorm.DB) *GormActivityLog {
	return &GormActivityLog{db: db, now: time.Now}
}

// WithClock returns a copy of the log that timestamps entries using now.
func (l *GormActivityLog) WithClock(now func() time.Time) *GormActivityLog {
	return &GormActivityLog{db: l.db, now: now}
}

func (l *GormActivityLog) Append(ctx context.Context, packageID kernel.UUID, action string) error {
	entry, err := activity.NewEntry(kernel.NewUUID(), packageID, action, l.now().UTC())
	if err != nil {
		return err
	}

	dto := fromDomain(entry)
	return l.db.WithContext(ctx).Create(&dto).Error
}
