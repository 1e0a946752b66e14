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

func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ID = c.Param("id")
	return req, sc, req.validate()
}

func (h *handler) processIDReq(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.scope(c)
	return c.Param("id"), sc, err
}
