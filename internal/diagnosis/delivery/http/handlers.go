package http

import (
	"github.com/gin-gonic/gin"

	"plant-care-assistant/pkg/response"
)

// Analyze godoc
// Accepts a multipart image upload and returns the committed diagnosis with
// its care recommendations.
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAnalyzeResp(output))
}

// Current returns the session's committed diagnosis, if any.
func (h *handler) Current(c *gin.Context) {
	profile := h.uc.Current(c.Request.Context())
	if profile == nil {
		response.OK(c, gin.H{"diagnosis": nil})
		return
	}
	response.OK(c, gin.H{"diagnosis": profile})
}

// Reset clears the current diagnosis (a new image was selected client-side).
func (h *handler) Reset(c *gin.Context) {
	h.uc.Reset(c.Request.Context())
	response.OK(c, gin.H{"status": "reset"})
}

// History returns past diagnoses, most recent first.
func (h *handler) History(c *gin.Context) {
	entries := h.uc.History(c.Request.Context())
	response.OK(c, newHistoryResp(entries))
}

// ClearHistory empties the diagnosis history.
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"status": "cleared"})
}
