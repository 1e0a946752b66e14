package http

import (
	"net/http"

	"smart-todo/internal/calendar"
	pkgErrors "smart-todo/pkg/errors"
)

var errInvalidTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "from and to must be YYYY-MM-DD or RFC3339")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrTodoNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Todo not found")
	case calendar.ErrAccessUnavailable:
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case calendar.ErrInvalidAction, calendar.ErrInvalidRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to sync with Google Calendar")
	}
}
