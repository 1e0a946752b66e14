package agent

import (
	"slices"
	"sync"

	"smart-todo/internal/model"
)

// RuleSet is the in-memory category -> agent table loaded from the store.
type RuleSet struct {
	mu     sync.RWMutex
	agents map[model.Category]model.Agent
}

// NewRuleSet builds a RuleSet from agent records. Later duplicates win.
func NewRuleSet(agents []model.Agent) *RuleSet {
	rs := &RuleSet{agents: make(map[model.Category]model.Agent, len(agents))}
	for _, a := range agents {
		rs.agents[a.Category] = a
	}
	return rs
}

// Lookup returns the agent for category, or DefaultAgent when none is loaded.
func (rs *RuleSet) Lookup(category model.Category) model.Agent {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	if a, ok := rs.agents[category]; ok {
		return a
	}
	return DefaultAgent()
}

// Set inserts or replaces the agent for its category.
func (rs *RuleSet) Set(a model.Agent) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.agents[a.Category] = a
}

// List returns the loaded agents ordered by category.
func (rs *RuleSet) List() []model.Agent {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	out := make([]model.Agent, 0, len(rs.agents))
	for _, a := range rs.agents {
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y model.Agent) int {
		switch {
		case x.Category < y.Category:
			return -1
		case x.Category > y.Category:
			return 1
		}
		return 0
	})
	return out
}

// DefaultAgent is used when no record matches the suggested category.
func DefaultAgent() model.Agent {
	return model.Agent{
		ID:             "default",
		Category:       model.CategoryNormal,
		Name:           "Default Agent",
		Description:    "Basic task processing",
		PromptTemplate: "Process this todo item with standard rules",
	}
}
