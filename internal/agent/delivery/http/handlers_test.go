package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/internal/agent"
	"smart-todo/internal/model"
	"smart-todo/pkg/log"
)

type mockUseCase struct {
	lastInput  agent.Input
	agents     []model.Agent
	listErr    error
	updateErr  error
	lastUpdate agent.UpdateAgentInput
}

func (m *mockUseCase) Process(ctx context.Context, in agent.Input) agent.Response {
	m.lastInput = in
	return agent.Response{
		Category:  model.CategoryReminder,
		Severity:  model.SeverityMedium,
		Reasoning: "reminder keywords",
		Suggestions: agent.Suggestions{
			DueTime: "09:00",
		},
	}
}

func (m *mockUseCase) ListAgents(ctx context.Context) ([]model.Agent, error) {
	return m.agents, m.listErr
}

func (m *mockUseCase) UpdateAgent(ctx context.Context, in agent.UpdateAgentInput) (model.Agent, error) {
	m.lastUpdate = in
	if m.updateErr != nil {
		return model.Agent{}, m.updateErr
	}
	return model.Agent{ID: "a1", Category: in.Category, Name: in.Name}, nil
}

func setupRouter(uc agent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/agents"), New(log.NewNop(), uc))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(uc)

	t.Run("OK", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/agents/analyze", `{"title":"Call mom tomorrow morning","due_date":"2026-01-02"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data analyzeResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "reminder", body.Data.Category)
		assert.Equal(t, "medium", body.Data.Severity)
		assert.Equal(t, "09:00", body.Data.Suggestions.DueTime)

		require.NotNil(t, uc.lastInput.DueDate)
		assert.Equal(t, "2026-01-02", uc.lastInput.DueDate.Format("2006-01-02"))
	})

	t.Run("Missing title", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/agents/analyze", `{"description":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Bad due date", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/agents/analyze", `{"title":"x","due_date":"02/01/2026"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAgents(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		r := setupRouter(&mockUseCase{agents: []model.Agent{
			{ID: "1", Category: model.CategoryNormal, Name: "Normal Todo Agent"},
		}})
		w := doJSON(r, http.MethodGet, "/agents", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Normal Todo Agent")
	})

	t.Run("Failure", func(t *testing.T) {
		r := setupRouter(&mockUseCase{listErr: errors.New("db down")})
		w := doJSON(r, http.MethodGet, "/agents", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdateAgent(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)
		w := doJSON(r, http.MethodPut, "/agents/custom", `{"name":"My Agent","prompt_template":"p"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.CategoryCustom, uc.lastUpdate.Category)
		assert.Equal(t, "p", uc.lastUpdate.PromptTemplate)
	})

	t.Run("Invalid category", func(t *testing.T) {
		r := setupRouter(&mockUseCase{updateErr: agent.ErrInvalidCategory})
		w := doJSON(r, http.MethodPut, "/agents/bogus", `{"name":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing name", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w := doJSON(r, http.MethodPut, "/agents/normal", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
