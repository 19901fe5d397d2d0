package http

import (
	"errors"
	"net/http"

	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/generated/servers"
	"customs/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps a use case error onto an HTTP status. Persistence failures
// are checked first since their causes may wrap validation sentinels.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrPersistenceFailure):
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	code := statusFor(err)

	switch code {
	case http.StatusInternalServerError:
		s.logger.Error(message, zap.String("path", ctx.Path()), zap.Error(err))
	case http.StatusConflict:
		message = "Package was modified concurrently, retry the request"
	default:
		message = err.Error()
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
