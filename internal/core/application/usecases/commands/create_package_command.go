package commands

import (
	"errors"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/errs"
	"customs/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand registers a package received on behalf of an importer.
//
// Example:
//
//	customer, _ := shipment.NewCustomer("Ana Ruiz", "+50688887777", "")
//	item, _ := shipment.NewItem("Sneakers", 1, fifty, "6404")
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), importerID, shipment.Details{
//	    TrackingNumber: "1Z999AA10123456784",
//	    Customer:       customer,
//	    Items:          []shipment.Item{item},
//	    DeclaredValue:  fifty,
//	}, time.Time{})
type CreatePackageCommand struct {
	packageID    kernel.UUID
	importerID   kernel.UUID
	details      shipment.Details
	receivedDate time.Time

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates identifiers and required details.
// A zero receivedDate means "now" at handling time.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	importerID kernel.UUID,
	details shipment.Details,
	receivedDate time.Time,
) (CreatePackageCommand, error) {
	var detailsErr error
	if details.TrackingNumber == "" {
		detailsErr = errs.NewValueIsRequiredError("tracking number")
	}

	if err := errors.Join(
		packageID.Validate(),
		importerID.Validate(),
		detailsErr,
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return CreatePackageCommand{
		packageID:    packageID,
		importerID:   importerID,
		details:      details,
		receivedDate: receivedDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c CreatePackageCommand) ImporterID() kernel.UUID {
	return c.importerID
}

func (c CreatePackageCommand) Details() shipment.Details {
	return c.details
}

func (c CreatePackageCommand) ReceivedDate() time.Time {
	return c.receivedDate
}
