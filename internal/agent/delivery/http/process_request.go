package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateAgentReq binds the agent body + category URI param.
func (h *handler) processUpdateAgentReq(c *gin.Context) (updateAgentReq, error) {
	var req updateAgentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Category = c.Param("category")
	return req, req.validate()
}
