package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plant-care-assistant/internal/library"
	"plant-care-assistant/internal/model"
	"plant-care-assistant/pkg/response"
)

var errPlantNotFound = errors.New("plant not found")

type listResp struct {
	Plants []model.PlantCare `json:"plants"`
	Count  int               `json:"count"`
}

// List returns the reference plants, optionally filtered by ?q=.
func (h *handler) List(c *gin.Context) {
	plants := library.Search(c.Query("q"))
	response.OK(c, listResp{Plants: plants, Count: len(plants)})
}

// Get returns one plant by name.
func (h *handler) Get(c *gin.Context) {
	plant, ok := library.Find(c.Param("name"))
	if !ok {
		response.ErrorWithStatus(c, http.StatusNotFound, errPlantNotFound)
		return
	}
	response.OK(c, plant)
}
