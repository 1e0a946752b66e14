package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	pkgErrors "smart-todo/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
