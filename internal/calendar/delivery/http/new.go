package http

import (
	"time"

	"smart-todo/internal/calendar"
	"smart-todo/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  calendar.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
