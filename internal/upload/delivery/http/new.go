package http

import (
	"smart-todo/internal/upload"
	"smart-todo/pkg/log"
)

// multipartOverhead allows room for form boundaries and headers on top of the file limit.
const multipartOverhead = 1 << 20

type handler struct {
	l        log.Logger
	uc       upload.UseCase
	maxBytes int64
}

// New creates a new HTTP handler for uploads. maxUploadMB <= 0 disables the body limit.
func New(l log.Logger, uc upload.UseCase, maxUploadMB int64) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		maxBytes: maxUploadMB << 20,
	}
}
