package agent

import (
	"time"

	"smart-todo/internal/model"
)

// Input is the todo draft handed to the heuristic.
type Input struct {
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     string
}

// Suggestions are optional hints returned alongside the classification.
type Suggestions struct {
	DueTime                string
	DescriptionEnhancement string
	Breakdown              []string
}

// Response is the outcome of Process.
type Response struct {
	Category    model.Category
	Severity    model.Severity
	Suggestions Suggestions
	Reasoning   string
}

// Analysis is the keyword pass that precedes executor selection.
type Analysis struct {
	Category model.Category
	Severity model.Severity
	Keywords []string
}

// UpdateAgentInput upserts the agent record for Category.
type UpdateAgentInput struct {
	Category       model.Category
	Name           string
	Description    string
	PromptTemplate string
}
