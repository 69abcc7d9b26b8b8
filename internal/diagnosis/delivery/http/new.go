package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/diagnosis"
	pkgLog "plant-care-assistant/pkg/log"
)

// Handler is the public interface for the diagnosis HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Current(c *gin.Context)
	Reset(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc diagnosis.UseCase
}

// New creates a new HTTP handler for the diagnosis domain.
func New(l pkgLog.Logger, uc diagnosis.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
