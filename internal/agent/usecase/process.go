package usecase

import (
	"context"
	"strings"

	"smart-todo/internal/agent"
)

// Process classifies a todo draft. A panic anywhere in the pipeline yields agent.DefaultResponse.
func (uc *implUseCase) Process(ctx context.Context, input agent.Input) (resp agent.Response) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Process recovered: %v", r)
			resp = agent.DefaultResponse()
		}
		uc.metrics.ObserveCategorization(string(resp.Category), string(resp.Severity))
	}()

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.DueTime = strings.TrimSpace(input.DueTime)

	analysis := agent.Analyze(input)
	selected := uc.rules.Lookup(analysis.Category)
	resp = uc.registry.Get(selected.Category).Execute(input, analysis)

	uc.l.Debugf(ctx, "uc.Process: %q -> %s/%s via %s", input.Title, resp.Category, resp.Severity, selected.Name)
	return resp
}
