package model

import "time"

// Agent is a categorization rule record keyed by category.
type Agent struct {
	ID             string
	Category       Category
	Name           string
	Description    string
	PromptTemplate string
	CreatedAt      time.Time
}
