package http

import (
	"context"

	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/application/usecases/queries"
	"customs/internal/core/domain/model/shipment"
)

// Use case handlers the server depends on. The command and query handler
// structs satisfy them.
type (
	CreatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePackageCommand) (shipment.Snapshot, error)
	}

	TransitionPackageHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionPackageCommand) (commands.TransitionResult, error)
	}

	SetPaymentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetPaymentStatusCommand) (commands.Result, error)
	}

	GetPackageHandler interface {
		Handle(ctx context.Context, query queries.GetPackageQuery) (queries.PackageView, error)
	}

	ListPackagesHandler interface {
		Handle(ctx context.Context, query queries.ListPackagesQuery) ([]queries.PackageView, error)
	}

	GetPackageActivityHandler interface {
		Handle(ctx context.Context, query queries.GetPackageActivityQuery) ([]queries.ActivityView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreatePackage      CreatePackageHandler
	TransitionPackage  TransitionPackageHandler
	SetPaymentStatus   SetPaymentStatusHandler
	GetPackage         GetPackageHandler
	ListPackages       ListPackagesHandler
	GetPackageActivity GetPackageActivityHandler
}
