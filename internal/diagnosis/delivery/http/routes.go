package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the diagnosis routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/analyze", h.Analyze)
	rg.GET("/current", h.Current)
	rg.POST("/reset", h.Reset)
	rg.GET("/history", h.History)
	rg.DELETE("/history", h.ClearHistory)
}
