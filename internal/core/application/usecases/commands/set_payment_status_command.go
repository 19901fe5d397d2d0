package commands

import (
	"errors"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/guard"
)

var ErrSetPaymentStatusCommandIsNotConstructed = errors.New(
	"SetPaymentStatusCommand must be created via NewSetPaymentStatusCommand constructor",
)

// SetPaymentStatusCommand marks a package paid or pending independently of
// its lifecycle status.
type SetPaymentStatusCommand struct {
	packageID kernel.UUID
	paid      bool

	guard guard.ConstructorGuard
}

func NewSetPaymentStatusCommand(packageID kernel.UUID, paid bool) (SetPaymentStatusCommand, error) {
	if err := packageID.Validate(); err != nil {
		return SetPaymentStatusCommand{}, err
	}

	return SetPaymentStatusCommand{
		packageID: packageID,
		paid:      paid,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentStatusCommandIsNotConstructed)
}

func (c SetPaymentStatusCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c SetPaymentStatusCommand) PaymentStatus() shipment.PaymentStatus {
	return shipment.PaymentStatusFromBool(c.paid)
}
