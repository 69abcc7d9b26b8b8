package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/model"
)

// maxImageBytes bounds accepted uploads (Claude inline images top out at ~5MB).
const maxImageBytes = 5 << 20

var errImageTooLarge = errors.New("image exceeds the 5MB limit")

// processAnalyzeReq extracts the uploaded image from the multipart form.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return req, err
	}
	if fileHeader.Size > maxImageBytes {
		return req, errImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return req, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, err
	}

	req.imageData = data
	req.mediaType = fileHeader.Header.Get("Content-Type")
	req.fileName = fileHeader.Filename
	return req, nil
}

// scopeFrom builds the request scope from client headers; anonymous when absent.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	return model.Scope{UserID: userID}
}
