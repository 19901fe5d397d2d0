package http

import (
	"net/http"
	"time"

	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/application/usecases/queries"
	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server implements servers.ServerInterface on top of the package use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// GetHealth godoc
// @Summary Liveness probe
// @Tags system
// @Produce plain
// @Success 200 {string} string "Healthy"
// @Router /health [get]
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreatePackage godoc
// @Summary Register a received package
// @Description Computes customs duty and VAT and stores the package as received with payment pending.
// @Tags packages
// @Accept json
// @Produce json
// @Param importerId path string true "Importer ID" format(uuid)
// @Param package body servers.NewPackage true "Package"
// @Success 201 {object} servers.Package
// @Failure 400 {object} servers.Error
// @Failure 404 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/importers/{importerId}/packages [post]
func (s *Server) CreatePackage(ctx echo.Context, importerId servers.ImporterId) error {
	var body servers.NewPackage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	importerID, err := toKernelUUID(importerId)
	if err != nil {
		return badRequest(ctx, "Invalid importer ID: "+err.Error())
	}

	details, err := toDetails(body)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	var receivedDate time.Time
	if body.ReceivedDate != nil {
		receivedDate = *body.ReceivedDate
	}

	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), importerID, details, receivedDate)
	if err != nil {
		return badRequest(ctx, "Invalid package data: "+err.Error())
	}

	snapshot, err := s.handlers.CreatePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to create package")
	}

	return ctx.JSON(http.StatusCreated, toPackage(queries.PackageViewFromSnapshot(snapshot)))
}

// ListPackages godoc
// @Summary List an importer's packages
// @Description Newest received first, optionally filtered by status.
// @Tags packages
// @Produce json
// @Param importerId path string true "Importer ID" format(uuid)
// @Param status query string false "Status filter" Enums(received, customs-pending, customs-cleared, ready-pickup, delivered, on-hold)
// @Success 200 {array} servers.Package
// @Failure 400 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/importers/{importerId}/packages [get]
func (s *Server) ListPackages(ctx echo.Context, importerId servers.ImporterId, params servers.ListPackagesParams) error {
	importerID, err := toKernelUUID(importerId)
	if err != nil {
		return badRequest(ctx, "Invalid importer ID: "+err.Error())
	}

	var status *shipment.Status
	if params.Status != nil {
		parsed, err := shipment.ParseStatus(string(*params.Status))
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewListPackagesQuery(importerID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	views, err := s.handlers.ListPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve packages")
	}

	response := make([]servers.Package, len(views))
	for i, view := range views {
		response[i] = toPackage(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPackage godoc
// @Summary Get a package
// @Tags packages
// @Produce json
// @Param packageId path string true "Package ID" format(uuid)
// @Success 200 {object} servers.Package
// @Failure 404 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/packages/{packageId} [get]
func (s *Server) GetPackage(ctx echo.Context, packageId servers.PackageId) error {
	packageID, err := toKernelUUID(packageId)
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.handlers.GetPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve package")
	}

	return ctx.JSON(http.StatusOK, toPackage(view))
}

// ChangePackageStatus godoc
// @Summary Change a package's status
// @Description Persists the change, then appends the activity entry, notifies the customer and syncs the sheet.
// @Description Side effects that fail are listed in sideEffects and do not fail the request.
// @Tags packages
// @Accept json
// @Produce json
// @Param packageId path string true "Package ID" format(uuid)
// @Param change body servers.StatusChange true "Requested status"
// @Success 200 {object} servers.TransitionResult
// @Failure 400 {object} servers.Error
// @Failure 404 {object} servers.Error
// @Failure 409 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/packages/{packageId}/status [post]
func (s *Server) ChangePackageStatus(ctx echo.Context, packageId servers.PackageId) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageID, err := toKernelUUID(packageId)
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	status, err := shipment.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewTransitionPackageCommand(packageID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.TransitionPackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to change package status")
	}

	return ctx.JSON(http.StatusOK, servers.TransitionResult{
		Package:        toPackage(queries.PackageViewFromSnapshot(result.Package)),
		PreviousStatus: servers.PackageStatus(result.Transition.From.String()),
		Notification:   servers.TransitionResultNotification(result.Transition.Notification.String()),
		PaymentForced:  result.Transition.PaymentForced,
		SideEffects:    toSideEffects(result.SideEffects),
	})
}

// SetPaymentStatus godoc
// @Summary Mark a package's duties as paid or pending
// @Tags packages
// @Accept json
// @Produce json
// @Param packageId path string true "Package ID" format(uuid)
// @Param change body servers.PaymentChange true "Payment status"
// @Success 200 {object} servers.PaymentResult
// @Failure 400 {object} servers.Error
// @Failure 404 {object} servers.Error
// @Failure 409 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/packages/{packageId}/payment [put]
func (s *Server) SetPaymentStatus(ctx echo.Context, packageId servers.PackageId) error {
	var body servers.PaymentChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageID, err := toKernelUUID(packageId)
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	cmd, err := commands.NewSetPaymentStatusCommand(packageID, body.Paid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.SetPaymentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to change payment status")
	}

	return ctx.JSON(http.StatusOK, servers.PaymentResult{
		Package:     toPackage(queries.PackageViewFromSnapshot(result.Package)),
		SideEffects: toSideEffects(result.SideEffects),
	})
}

// GetPackageActivity godoc
// @Summary Get a package's activity log
// @Tags packages
// @Produce json
// @Param packageId path string true "Package ID" format(uuid)
// @Success 200 {array} servers.ActivityEntry
// @Failure 404 {object} servers.Error
// @Failure 500 {object} servers.Error
// @Router /api/v1/packages/{packageId}/activity [get]
func (s *Server) GetPackageActivity(ctx echo.Context, packageId servers.PackageId) error {
	packageID, err := toKernelUUID(packageId)
	if err != nil {
		return badRequest(ctx, "Invalid package ID: "+err.Error())
	}

	query, err := queries.NewGetPackageActivityQuery(packageID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetPackageActivity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve package activity")
	}

	response := make([]servers.ActivityEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.ActivityEntry{
			Id:        entry.ID.Bytes(),
			Action:    entry.Action,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
