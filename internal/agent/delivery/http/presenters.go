package http

import (
	"time"

	"smart-todo/internal/agent"
	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	Title       string `json:"title"       binding:"required,max=500"`
	Description string `json:"description" binding:"max=5000"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"    binding:"omitempty,len=5"`
}

func (r analyzeReq) validate() error {
	if r.DueDate == "" {
		return nil
	}
	if _, err := time.Parse(response.DateFormat, r.DueDate); err != nil {
		return errInvalidDueDate
	}
	return nil
}

func (r analyzeReq) toInput() agent.Input {
	in := agent.Input{
		Title:       r.Title,
		Description: r.Description,
		DueTime:     r.DueTime,
	}
	if d, err := time.Parse(response.DateFormat, r.DueDate); err == nil {
		in.DueDate = &d
	}
	return in
}

// ---

type updateAgentReq struct {
	Category       string `json:"-"`
	Name           string `json:"name"            binding:"required,max=255"`
	Description    string `json:"description"     binding:"max=2000"`
	PromptTemplate string `json:"prompt_template" binding:"max=5000"`
}

func (r updateAgentReq) validate() error { return nil }

func (r updateAgentReq) toInput() agent.UpdateAgentInput {
	return agent.UpdateAgentInput{
		Category:       model.Category(r.Category),
		Name:           r.Name,
		Description:    r.Description,
		PromptTemplate: r.PromptTemplate,
	}
}

// --- Response DTOs ---

type suggestionsResp struct {
	DueTime                string   `json:"due_time,omitempty"`
	DescriptionEnhancement string   `json:"description_enhancement,omitempty"`
	Breakdown              []string `json:"breakdown,omitempty"`
}

type analyzeResp struct {
	Category    string          `json:"category"`
	Severity    string          `json:"severity"`
	Suggestions suggestionsResp `json:"suggestions"`
	Reasoning   string          `json:"reasoning"`
}

func (h *handler) newAnalyzeResp(out agent.Response) analyzeResp {
	return analyzeResp{
		Category: string(out.Category),
		Severity: string(out.Severity),
		Suggestions: suggestionsResp{
			DueTime:                out.Suggestions.DueTime,
			DescriptionEnhancement: out.Suggestions.DescriptionEnhancement,
			Breakdown:              out.Suggestions.Breakdown,
		},
		Reasoning: out.Reasoning,
	}
}

type agentResp struct {
	ID             string            `json:"id"`
	Category       string            `json:"category"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	PromptTemplate string            `json:"prompt_template"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newAgentResp(a model.Agent) agentResp {
	return agentResp{
		ID:             a.ID,
		Category:       string(a.Category),
		Name:           a.Name,
		Description:    a.Description,
		PromptTemplate: a.PromptTemplate,
		CreatedAt:      response.DateTime(a.CreatedAt),
	}
}

type listAgentsResp struct {
	Agents []agentResp `json:"agents"`
}

func (h *handler) newListAgentsResp(agents []model.Agent) listAgentsResp {
	out := make([]agentResp, len(agents))
	for i, a := range agents {
		out[i] = newAgentResp(a)
	}
	return listAgentsResp{Agents: out}
}

type updateAgentResp struct {
	Agent agentResp `json:"agent"`
}

func (h *handler) newUpdateAgentResp(a model.Agent) updateAgentResp {
	return updateAgentResp{Agent: newAgentResp(a)}
}
