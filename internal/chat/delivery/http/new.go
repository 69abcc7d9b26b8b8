package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/chat"
	pkgLog "plant-care-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Send(c *gin.Context)
	Transcript(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
