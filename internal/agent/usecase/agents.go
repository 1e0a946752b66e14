package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/agent"
	repo "smart-todo/internal/agent/repository"
	"smart-todo/internal/model"
)

// ListAgents returns the agents currently loaded in memory.
func (uc *implUseCase) ListAgents(ctx context.Context) ([]model.Agent, error) {
	return uc.rules.List(), nil
}

// UpdateAgent upserts the record and, on success only, refreshes the in-memory rule set.
func (uc *implUseCase) UpdateAgent(ctx context.Context, input agent.UpdateAgentInput) (model.Agent, error) {
	if !input.Category.IsValid() {
		return model.Agent{}, agent.ErrInvalidCategory
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Agent{}, agent.ErrNameRequired
	}

	a, err := uc.repo.UpsertAgent(ctx, repo.UpsertAgentOptions{
		Category:       input.Category,
		Name:           name,
		Description:    input.Description,
		PromptTemplate: input.PromptTemplate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateAgent UpsertAgent: %v", err)
		return model.Agent{}, err
	}

	uc.rules.Set(a)
	return a, nil
}
