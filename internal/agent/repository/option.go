package repository

import "smart-todo/internal/model"

// UpsertAgentOptions inserts or replaces the agent keyed by Category.
type UpsertAgentOptions struct {
	Category       model.Category
	Name           string
	Description    string
	PromptTemplate string
}
