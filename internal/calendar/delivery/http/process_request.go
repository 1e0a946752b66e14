package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	pkgErrors "smart-todo/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processSyncReq(c *gin.Context) (syncReq, model.Scope, error) {
	var req syncReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, model.Scope, error) {
	var req listEventsReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate(h.now())
}
