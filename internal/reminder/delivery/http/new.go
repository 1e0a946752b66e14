package http

import (
	"time"

	"smart-todo/internal/reminder"
	"smart-todo/pkg/log"
)

const defaultHeartbeat = 30 * time.Second

type handler struct {
	l         log.Logger
	uc        reminder.UseCase
	heartbeat time.Duration
}

// New creates a new HTTP handler for the notifications API.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		heartbeat: defaultHeartbeat,
	}
}
