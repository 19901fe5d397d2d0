package queries

import (
	"errors"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// ListPackagesQuery lists an importer's packages, newest received first,
// optionally filtered by status. Items are not loaded.
//
// Example:
//
//	query, _ := NewListPackagesQuery(importerID, nil)
//	pending := shipment.CustomsPending
//	onlyPending, _ := NewListPackagesQuery(importerID, &pending)
type ListPackagesQuery struct {
	importerID kernel.UUID
	status     *shipment.Status

	guard guard.ConstructorGuard
}

func NewListPackagesQuery(importerID kernel.UUID, status *shipment.Status) (ListPackagesQuery, error) {
	if err := importerID.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}

	var filter *shipment.Status
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListPackagesQuery{}, err
		}
		s := *status
		filter = &s
	}

	return ListPackagesQuery{
		importerID: importerID,
		status:     filter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) ImporterID() kernel.UUID {
	return q.importerID
}

// Status returns the filter and whether one is set.
func (q ListPackagesQuery) Status() (shipment.Status, bool) {
	if q.status == nil {
		return shipment.Unknown, false
	}
	return *q.status, true
}
