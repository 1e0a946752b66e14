package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.DELETE("", h.Clear)
	rg.POST("/daily", h.TriggerDaily)
	rg.GET("/stream", h.Stream)
}
