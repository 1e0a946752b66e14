package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/images", h.UploadImage)
	rg.POST("/voice-notes", h.UploadVoiceNote)
	rg.DELETE("/:kind/*key", h.Remove)
}
