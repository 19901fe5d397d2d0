package queries

import (
	"context"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPackageActivityQueryHandler struct {
	db *gorm.DB
}

func NewGetPackageActivityQueryHandler(db *gorm.DB) GetPackageActivityQueryHandler {
	return GetPackageActivityQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown package so callers
// can tell it apart from a package without entries.
func (h GetPackageActivityQueryHandler) Handle(
	ctx context.Context,
	query GetPackageActivityQuery,
) ([]ActivityView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.PackageID()

	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM packages WHERE id = ?`, id.Bytes()).Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("package", id.String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			action,
			created_at
		FROM activity_log
		WHERE package_id = ?
		ORDER BY created_at, id
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ActivityView, 0)
	for rows.Next() {
		var (
			rawID     uuid.UUID
			action    string
			createdAt time.Time
		)
		if err = rows.Scan(&rawID, &action, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, ActivityView{ID: entryID, Action: action, CreatedAt: createdAt})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
