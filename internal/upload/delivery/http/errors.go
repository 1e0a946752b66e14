package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/upload"
	pkgErrors "smart-todo/pkg/errors"
)

var errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"file\" is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr), errors.Is(err, upload.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, upload.ErrFileTooLarge.Error())
	case errors.Is(err, upload.ErrEmptyFile),
		errors.Is(err, upload.ErrUnsupportedType),
		errors.Is(err, upload.ErrInvalidKind):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, upload.ErrForbidden):
		return pkgErrors.ErrForbidden
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to upload file")
	}
}
