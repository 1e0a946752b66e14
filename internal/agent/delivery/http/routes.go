package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// rg is expected to carry the Auth middleware already.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/analyze", h.Analyze)
	rg.GET("", h.List)
	rg.PUT("/:category", h.Update)
}
