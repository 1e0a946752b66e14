package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the data store for agent records.
type Repository interface {
	ListAgents(ctx context.Context) ([]model.Agent, error)
	UpsertAgent(ctx context.Context, opt UpsertAgentOptions) (model.Agent, error)
}
