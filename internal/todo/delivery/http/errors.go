package http

import (
	"net/http"

	"smart-todo/internal/todo"
	pkgErrors "smart-todo/pkg/errors"
)

var (
	errInvalidDate      = pkgErrors.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
	errInvalidCompleted = pkgErrors.NewHTTPError(http.StatusBadRequest, "completed must be true or false")
	errInvalidOrder     = pkgErrors.NewHTTPError(http.StatusBadRequest, "order must be asc or desc")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case todo.ErrTodoNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Todo not found")
	case todo.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Not authorized to modify this todo")
	case todo.ErrTitleRequired,
		todo.ErrInvalidCategory,
		todo.ErrInvalidSeverity,
		todo.ErrInvalidDueTime,
		todo.ErrInvalidDueFilter,
		todo.ErrInvalidSort:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
