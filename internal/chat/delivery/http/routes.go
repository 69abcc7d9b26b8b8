package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the chat routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/messages", h.Send)
	rg.GET("/messages", h.Transcript)
}
