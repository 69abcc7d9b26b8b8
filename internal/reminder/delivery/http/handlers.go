package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/model"
	"plant-care-assistant/internal/reminder"
	"plant-care-assistant/pkg/response"
)

// Add creates a reminder from the request body.
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}
	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newAddResp(output))
}

// Delete removes the reminder identified by the path id.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// List returns the reminders in insertion order.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListResp(h.uc.List(ctx)))
}

// ClearAll removes every reminder.
func (h *handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearAll(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case reminder.ErrEmptyField:
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	default:
		response.InternalError(c)
	}
}
