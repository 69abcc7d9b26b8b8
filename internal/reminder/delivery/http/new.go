package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/reminder"
	pkgLog "plant-care-assistant/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	Delete(c *gin.Context)
	List(c *gin.Context)
	ClearAll(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l pkgLog.Logger, uc reminder.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
