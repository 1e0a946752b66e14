package usecase

import (
	"time"

	"smart-todo/internal/agent"
	"smart-todo/internal/calendar"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	agentUC    agent.UseCase
	calendarUC calendar.UseCase
	dateMath   *datemath.Parser
	now        func() time.Time
}

// New creates a new todo UseCase instance. calendarUC may be nil, in which
// case reminder todos are not mirrored.
func New(
	l log.Logger,
	repo repository.Repository,
	agentUC agent.UseCase,
	calendarUC calendar.UseCase,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		agentUC:    agentUC,
		calendarUC: calendarUC,
		dateMath:   dateMath,
		now:        time.Now,
	}
}
