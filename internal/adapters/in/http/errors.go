package http

import (
	"net/http"

	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromKind maps the application error taxonomy onto HTTP statuses.
// ConcurrencyConflict uses 412 so clients distinguish a stale token from
// the 409 uniqueness conflicts.
func statusFromKind(kind errs.Kind) int {
	switch kind {
	case errs.NotFound:
		return http.StatusNotFound
	case errs.Validation:
		return http.StatusBadRequest
	case errs.Conflict:
		return http.StatusConflict
	case errs.ConcurrencyConflict:
		return http.StatusPreconditionFailed
	case errs.BusinessRule:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an application error as the API's error shape.
// Unexpected errors get a generic message so internals never leak.
func writeError(ctx echo.Context, err error) error {
	status := statusFromKind(errs.KindOf(err))

	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "An unexpected error occurred"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
