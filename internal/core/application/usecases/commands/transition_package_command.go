package commands

import (
	"errors"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/pkg/guard"
)

var ErrTransitionPackageCommandIsNotConstructed = errors.New(
	"TransitionPackageCommand must be created via NewTransitionPackageCommand constructor",
)

// TransitionPackageCommand requests moving a package to a new lifecycle status.
//
// Example:
//
//	target, err := shipment.ParseStatus("ready-pickup")
//	cmd, err := NewTransitionPackageCommand(packageID, target)
//	result, err := handler.Handle(ctx, cmd)
type TransitionPackageCommand struct {
	packageID kernel.UUID
	target    shipment.Status

	guard guard.ConstructorGuard
}

// NewTransitionPackageCommand rejects an invalid package ID or an unknown
// status with an error wrapping shipment.ErrInvalidTransition for the latter.
func NewTransitionPackageCommand(packageID kernel.UUID, target shipment.Status) (TransitionPackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return TransitionPackageCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return TransitionPackageCommand{}, errors.Join(shipment.ErrInvalidTransition, err)
	}

	return TransitionPackageCommand{
		packageID: packageID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionPackageCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPackageCommandIsNotConstructed)
}

func (c TransitionPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c TransitionPackageCommand) Target() shipment.Status {
	return c.target
}
