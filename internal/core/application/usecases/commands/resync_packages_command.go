package commands

import (
	"errors"

	"customs/internal/pkg/errs"
	"customs/internal/pkg/guard"
)

const maxResyncBatch = 500

var ErrResyncPackagesCommandIsNotConstructed = errors.New(
	"ResyncPackagesCommand must be created via NewResyncPackagesCommand constructor",
)

// ResyncPackagesCommand retries the sheet sync of packages whose last sync failed.
type ResyncPackagesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewResyncPackagesCommand(batchSize int) (ResyncPackagesCommand, error) {
	if batchSize <= 0 || batchSize > maxResyncBatch {
		return ResyncPackagesCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, maxResyncBatch)
	}

	return ResyncPackagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ResyncPackagesCommand) Validate() error {
	return c.guard.Validate(ErrResyncPackagesCommandIsNotConstructed)
}

func (c ResyncPackagesCommand) BatchSize() int {
	return c.batchSize
}
