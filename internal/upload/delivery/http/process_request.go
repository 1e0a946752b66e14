package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/internal/upload"
	pkgErrors "smart-todo/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processUploadRequest reads the "file" form field. The caller must close the returned file.
func (h *handler) processUploadRequest(c *gin.Context, kind upload.Kind) (model.Scope, upload.Input, multipart.File, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, upload.Input{}, nil, err
	}

	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes+multipartOverhead {
			return sc, upload.Input{}, nil, h.mapError(upload.ErrFileTooLarge)
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return sc, upload.Input{}, nil, h.mapError(err)
		}
		return sc, upload.Input{}, nil, errMissingFile
	}

	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "upload.http.processUploadRequest.Open: %v", err)
		return sc, upload.Input{}, nil, pkgErrors.ErrInternalServerError
	}

	return sc, upload.Input{
		Kind:        kind,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}

func (h *handler) processRemoveRequest(c *gin.Context) (model.Scope, upload.RemoveInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, upload.RemoveInput{}, err
	}
	return sc, upload.RemoveInput{
		Kind: upload.Kind(c.Param("kind")),
		Key:  c.Param("key"),
	}, nil
}
