package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/chat"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/response"
)

type sendReq struct {
	Message string `json:"message" binding:"required"`
}

type sendResp struct {
	Question model.ChatTurn `json:"question"`
	Answer   model.ChatTurn `json:"answer"`
}

type transcriptResp struct {
	Turns []model.ChatTurn `json:"turns"`
	Busy  bool             `json:"busy"`
}

// Send submits one gardening question and returns the resolved turn pair.
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}
	output, err := h.uc.Send(ctx, sc, chat.SendInput{Message: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, sendResp{Question: output.Question, Answer: output.Answer})
}

// Transcript returns the ordered session transcript.
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, transcriptResp{
		Turns: h.uc.Transcript(ctx),
		Busy:  h.uc.Busy(ctx),
	})
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case chat.ErrEmptyMessage:
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	case chat.ErrChatBusy:
		response.ErrorWithStatus(c, http.StatusConflict, err)
	default:
		response.ErrorWithStatus(c, http.StatusBadGateway, err)
	}
}
