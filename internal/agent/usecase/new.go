package usecase

import (
	"context"

	"smart-todo/internal/agent"
	"smart-todo/internal/agent/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/metrics"
)

// implUseCase is the private implementation of agent.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	rules    *agent.RuleSet
	registry *agent.Registry
	metrics  *metrics.Metrics
}

// New creates a new agent UseCase with an empty rule set. Call Load to fill it from the store.
func New(l log.Logger, repo repository.Repository, m *metrics.Metrics) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		rules:    agent.NewRuleSet(nil),
		registry: agent.NewRegistry(),
		metrics:  m,
	}
}

// Load replaces the rule set with the records currently in the store.
func (uc *implUseCase) Load(ctx context.Context) error {
	agents, err := uc.repo.ListAgents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load ListAgents: %v", err)
		return err
	}
	uc.rules = agent.NewRuleSet(agents)
	uc.l.Infof(ctx, "Loaded %d categorization agents", len(agents))
	return nil
}
