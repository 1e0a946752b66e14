package agent

import (
	"fmt"
	"slices"

	"smart-todo/internal/model"
)

// Executor turns an Analysis into a Response for one category.
type Executor interface {
	// Category returns the agent category this executor serves.
	Category() model.Category

	// Execute builds the response for a todo already analyzed.
	Execute(in Input, a Analysis) Response
}

// Registry maps categories to executors. Unknown categories fall back to the custom executor.
type Registry struct {
	executors map[model.Category]Executor
	fallback  Executor
}

// NewRegistry creates a registry preloaded with the normal, reminder and custom executors.
func NewRegistry() *Registry {
	r := &Registry{
		executors: make(map[model.Category]Executor),
		fallback:  customExecutor{},
	}
	r.Register(normalExecutor{})
	r.Register(reminderExecutor{})
	r.Register(customExecutor{})
	return r
}

// Register adds or replaces an executor.
func (r *Registry) Register(e Executor) {
	r.executors[e.Category()] = e
}

// Get retrieves the executor for category, falling back to the custom one.
func (r *Registry) Get(category model.Category) Executor {
	if e, ok := r.executors[category]; ok {
		return e
	}
	return r.fallback
}

// List returns the registered categories in a stable order.
func (r *Registry) List() []model.Category {
	out := make([]model.Category, 0, len(r.executors))
	for c := range r.executors {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

type normalExecutor struct{}

func (normalExecutor) Category() model.Category { return model.CategoryNormal }

func (normalExecutor) Execute(in Input, a Analysis) Response {
	var s Suggestions
	if needsBreakdown(in) {
		s.Breakdown = Breakdown(in.Title)
	}
	if in.Description == "" && a.Severity == model.SeverityHigh {
		s.DescriptionEnhancement = fmt.Sprintf(enhancementHighPriority, in.Title)
	}

	return Response{
		Category:    model.CategoryNormal,
		Severity:    a.Severity,
		Suggestions: s,
		Reasoning:   fmt.Sprintf(reasoningNormal, a.Severity),
	}
}

type reminderExecutor struct{}

func (reminderExecutor) Category() model.Category { return model.CategoryReminder }

func (reminderExecutor) Execute(in Input, a Analysis) Response {
	var s Suggestions
	if in.DueTime == "" {
		s.DueTime = defaultReminderTime
		for _, hint := range reminderTimeHints {
			if slices.Contains(a.Keywords, hint.token) {
				s.DueTime = hint.time
				break
			}
		}
	}
	if in.Description == "" {
		s.DescriptionEnhancement = fmt.Sprintf(enhancementReminder, in.Title)
	}

	return Response{
		Category:    model.CategoryReminder,
		Severity:    a.Severity,
		Suggestions: s,
		Reasoning:   reasoningReminder,
	}
}

type customExecutor struct{}

func (customExecutor) Category() model.Category { return model.CategoryCustom }

func (customExecutor) Execute(in Input, a Analysis) Response {
	return Response{
		Category:  model.CategoryCustom,
		Severity:  a.Severity,
		Reasoning: reasoningCustom,
	}
}
