package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ckreative/trainer-scheduler/internal/domain/availability"
	"github.com/ckreative/trainer-scheduler/internal/dto"
	"github.com/ckreative/trainer-scheduler/internal/httpresp"
)

// TimeGridHandler serves the 15-minute picker values. The list never
// changes, so it is built once.
type TimeGridHandler struct {
	options []dto.TimeGridOptionDTO
}

func NewTimeGridHandler() *TimeGridHandler {
	grid := availability.Grid()
	options := make([]dto.TimeGridOptionDTO, len(grid))
	for i, hm := range grid {
		options[i] = dto.TimeGridOptionDTO{
			Value: hm,
			Label: availability.Display(hm),
		}
	}
	return &TimeGridHandler{options: options}
}

func (h *TimeGridHandler) List(c *gin.Context) {
	httpresp.List(c, h.options)
}
