package http

import (
	"github.com/gin-gonic/gin"

	pkgLog "plant-care-assistant/pkg/log"
)

// Handler is the public interface for the plant library HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates a new HTTP handler for the plant library.
func New(l pkgLog.Logger) Handler {
	return &handler{l: l}
}
