// Package commands contains business operations that modify package state.
// Every command follows the same shape: constructor validation, a per-package
// lock where state already exists, a unit of work for the persistence write,
// and best-effort side effects after commit.
package commands

import (
	"context"

	"customs/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// ImporterRepoFactory provides access to the importer repository within a transaction.
	ImporterRepoFactory interface {
		ImporterRepository() ports.ImporterRepository
	}

	// ActivityLogFactory provides access to the activity log within a transaction.
	ActivityLogFactory interface {
		ActivityLog() ports.ActivityLog
	}

	// PackageUoW manages transactions that only touch the package aggregate.
	// Status transitions and payment toggles run inside one.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// UoW spans packages, importers and the activity log.
	// Used when registering a package, so the package row and its
	// "Package received" entry are committed together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   imp, err := uow.ImporterRepository().Get(ctx, importerID)
	//   err = uow.PackageRepository().Add(ctx, pkg)
	//   err = uow.ActivityLog().Append(ctx, pkg.ID(), activity.MessagePackageReceived)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PackageRepoFactory
		ImporterRepoFactory
		ActivityLogFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
