package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	repo "smart-todo/internal/agent/repository"
	"smart-todo/internal/model"
)

const agentColumns = `id, category, name, description, prompt_template, created_at`

type agentRow struct {
	ID             string    `db:"id"`
	Category       string    `db:"category"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	PromptTemplate string    `db:"prompt_template"`
	CreatedAt      time.Time `db:"created_at"`
}

func (row agentRow) toModel() model.Agent {
	return model.Agent{
		ID:             row.ID,
		Category:       model.Category(row.Category),
		Name:           row.Name,
		Description:    row.Description,
		PromptTemplate: row.PromptTemplate,
		CreatedAt:      row.CreatedAt,
	}
}

// ListAgents returns every agent record ordered by category.
func (r *implRepository) ListAgents(ctx context.Context) ([]model.Agent, error) {
	var rows []agentRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+agentColumns+` FROM todo_agents ORDER BY category`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAgents"), err)
		return nil, repo.ErrFailedToList
	}

	agents := make([]model.Agent, 0, len(rows))
	for _, row := range rows {
		agents = append(agents, row.toModel())
	}
	return agents, nil
}

// UpsertAgent inserts the agent or replaces the record with the same category.
func (r *implRepository) UpsertAgent(ctx context.Context, opt repo.UpsertAgentOptions) (model.Agent, error) {
	const query = `
		INSERT INTO todo_agents (id, category, name, description, prompt_template, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (category) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, prompt_template = EXCLUDED.prompt_template
		RETURNING ` + agentColumns

	var row agentRow
	err := r.db.QueryRowxContext(ctx, query,
		uuid.NewString(), string(opt.Category), opt.Name, opt.Description, opt.PromptTemplate,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertAgent"), err)
		return model.Agent{}, repo.ErrFailedToUpsert
	}
	return row.toModel(), nil
}
