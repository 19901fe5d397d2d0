package queries

import (
	"errors"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/pkg/guard"
)

var ErrGetPackageActivityQueryIsNotConstructed = errors.New(
	"GetPackageActivityQuery must be created via NewGetPackageActivityQuery constructor",
)

// GetPackageActivityQuery returns a package's audit trail, oldest first.
type GetPackageActivityQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPackageActivityQuery(packageID kernel.UUID) (GetPackageActivityQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageActivityQuery{}, err
	}

	return GetPackageActivityQuery{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageActivityQueryIsNotConstructed)
}

func (q GetPackageActivityQuery) PackageID() kernel.UUID {
	return q.packageID
}

type ActivityView struct {
	ID        kernel.UUID
	Action    string
	CreatedAt time.Time
}
