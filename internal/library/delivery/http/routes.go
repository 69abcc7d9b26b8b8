package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the plant library routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.List)
	rg.GET("/:name", h.Get)
}
