package http

import (
	"net/http"

	"smart-todo/internal/agent"
	pkgErrors "smart-todo/pkg/errors"
)

var errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case agent.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "category must be one of normal, reminder, custom")
	case agent.ErrNameRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
