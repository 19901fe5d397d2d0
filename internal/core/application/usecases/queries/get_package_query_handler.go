package queries

import (
	"context"

	"customs/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPackageQueryHandler struct {
	db *gorm.DB
}

func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the package does not exist.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageView, error) {
	if err := query.Validate(); err != nil {
		return PackageView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.PackageID()

	var rows []packageRow
	if err := db.Raw(`SELECT `+packageColumns+` FROM packages WHERE id = ?`, id.Bytes()).Scan(&rows).Error; err != nil {
		return PackageView{}, err
	}
	if len(rows) == 0 {
		return PackageView{}, errs.NewObjectNotFoundError("package", id.String())
	}

	view, err := rows[0].toView()
	if err != nil {
		return PackageView{}, err
	}

	var items []itemRow
	if err = db.Raw(`
		SELECT
			description,
			quantity,
			unit_value_cents,
			hs_code
		FROM package_items
		WHERE package_id = ?
		ORDER BY position
	`, id.Bytes()).Scan(&items).Error; err != nil {
		return PackageView{}, err
	}

	view.Items = make([]ItemView, 0, len(items))
	for _, row := range items {
		item, itemErr := row.toView()
		if itemErr != nil {
			return PackageView{}, itemErr
		}
		view.Items = append(view.Items, item)
	}

	return view, nil
}
