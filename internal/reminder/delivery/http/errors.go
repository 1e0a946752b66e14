package http

import (
	"net/http"

	"smart-todo/internal/reminder"
	pkgErrors "smart-todo/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case reminder.ErrNoTodosToday:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "No todos due today")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
