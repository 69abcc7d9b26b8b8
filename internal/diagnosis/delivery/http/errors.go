package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/diagnosis"
	"plant-care-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case diagnosis.ErrNoImage:
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	case diagnosis.ErrAnalysisInFlight:
		response.ErrorWithStatus(c, http.StatusConflict, err)
	default:
		// Transport failures toward the classifier: the caller may retry.
		response.ErrorWithStatus(c, http.StatusBadGateway, err)
	}
}
