package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/httperr"
	"github.com/ckreative/trainer-scheduler/internal/httpresp"
	ucSchedule "github.com/ckreative/trainer-scheduler/internal/usecase/schedule"
)

// PublicHandler serves the unauthenticated read path used by booking pages:
// given a schedule id and a calendar date, which slots are offerable.
type PublicHandler struct {
	resolveUC *ucSchedule.ResolveDate
}

func NewPublicHandler(resolveUC *ucSchedule.ResolveDate) *PublicHandler {
	return &PublicHandler{resolveUC: resolveUC}
}

func (h *PublicHandler) AvailabilityForDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "schedule id must be a UUID")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}

	resolved, err := h.resolveUC.Execute(c.Request.Context(), ucSchedule.ResolveDateInput{
		ScheduleID: id,
		Date:       date,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, resolved)
}
