package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Analyze godoc
// @Summary     Categorize a todo draft
// @Description Runs the keyword heuristic and returns category, severity and suggestions. Never fails on valid input.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body analyzeReq true "Todo draft"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/agents/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(h.uc.Process(ctx, req.toInput())))
}

// List godoc
// @Summary     List categorization agents
// @Tags        Agents
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listAgentsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/agents [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	agents, err := h.uc.ListAgents(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAgents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAgentsResp(agents))
}

// Update godoc
// @Summary     Upsert a categorization agent
// @Description Stores the agent and refreshes the in-memory rule set.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category path string         true "normal, reminder or custom"
// @Param       body     body updateAgentReq true "Agent data"
// @Success     200 {object} updateAgentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agents/{category} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateAgentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.uc.UpdateAgent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateAgent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateAgentResp(a))
}
