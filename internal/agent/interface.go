package agent

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process never fails: internal errors degrade to DefaultResponse.
	Process(ctx context.Context, input Input) Response
	ListAgents(ctx context.Context) ([]model.Agent, error)
	UpdateAgent(ctx context.Context, input UpdateAgentInput) (model.Agent, error)
}
