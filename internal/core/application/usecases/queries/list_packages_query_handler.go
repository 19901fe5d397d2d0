package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListPackagesQueryHandler struct {
	db *gorm.DB
}

func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle returns an empty slice, not an error, for an importer with no packages.
func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + packageColumns + ` FROM packages WHERE importer_id = ?`
	args := []any{query.ImporterID().Bytes()}
	if status, ok := query.Status(); ok {
		sql += ` AND status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY received_date DESC, id`

	var rows []packageRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]PackageView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
