package http

import (
	"smart-todo/internal/agent"
	"smart-todo/pkg/log"
)

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc agent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
