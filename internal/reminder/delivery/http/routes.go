package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the reminder routes on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.DELETE("/:id", h.Delete)
	rg.DELETE("", h.ClearAll)
}
