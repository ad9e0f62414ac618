package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/domain/availability"
	"github.com/ckreative/trainer-scheduler/internal/dto"
	"github.com/ckreative/trainer-scheduler/internal/httperr"
	"github.com/ckreative/trainer-scheduler/internal/httpresp"
	"github.com/ckreative/trainer-scheduler/internal/middleware"
	ucSchedule "github.com/ckreative/trainer-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	listUC       *ucSchedule.ListSchedules
	getUC        *ucSchedule.GetSchedule
	createUC     *ucSchedule.CreateSchedule
	updateUC     *ucSchedule.UpdateSchedule
	deleteUC     *ucSchedule.DeleteSchedule
	duplicateUC  *ucSchedule.DuplicateSchedule
	setDefaultUC *ucSchedule.SetDefaultSchedule
}

func NewScheduleHandler(
	listUC *ucSchedule.ListSchedules,
	getUC *ucSchedule.GetSchedule,
	createUC *ucSchedule.CreateSchedule,
	updateUC *ucSchedule.UpdateSchedule,
	deleteUC *ucSchedule.DeleteSchedule,
	duplicateUC *ucSchedule.DuplicateSchedule,
	setDefaultUC *ucSchedule.SetDefaultSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		listUC:       listUC,
		getUC:        getUC,
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		duplicateUC:  duplicateUC,
		setDefaultUC: setDefaultUC,
	}
}

// --------- Requests ---------

type CreateScheduleRequest struct {
	Name          string                      `json:"name"`
	Timezone      string                      `json:"timezone"`
	Schedule      []availability.DayTemplate  `json:"schedule"`
	DateOverrides []availability.DateOverride `json:"dateOverrides"`
	IsDefault     bool                        `json:"isDefault"`
}

type UpdateScheduleRequest struct {
	Name          *string                      `json:"name"`
	Timezone      *string                      `json:"timezone"`
	Schedule      *[]availability.DayTemplate  `json:"schedule"`
	DateOverrides *[]availability.DateOverride `json:"dateOverrides"`
}

type DuplicateScheduleRequest struct {
	Name string `json:"name"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	schedules, err := h.listUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	items := make([]dto.ScheduleListItemDTO, 0, len(schedules))
	for _, s := range schedules {
		items = append(items, dto.ScheduleListItemDTO{
			ID:             s.ID,
			Name:           s.Name,
			IsDefault:      s.IsDefault,
			Timezone:       s.Timezone,
			Summary:        availability.Summarize(s.WeeklyTemplate, availability.Grouped),
			EventTypeCount: s.EventTypeCount,
			UpdatedAt:      s.UpdatedAt,
		})
	}

	httpresp.List(c, items)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	s, err := h.getUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"schedule": s,
		"summary":  availability.Summarize(s.WeeklyTemplate, availability.Compact),
	})
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucSchedule.CreateScheduleInput{
		OwnerID:   ownerID,
		Name:      req.Name,
		Timezone:  req.Timezone,
		Overrides: req.DateOverrides,
		IsDefault: req.IsDefault,
	}
	if req.Schedule != nil {
		tpl := templateFromDays(req.Schedule)
		in.Template = &tpl
	}

	s, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucSchedule.UpdateScheduleInput{
		OwnerID:    ownerID,
		ScheduleID: id,
		Name:       req.Name,
		Timezone:   req.Timezone,
		Overrides:  req.DateOverrides,
	}
	if req.Schedule != nil {
		tpl := templateFromDays(*req.Schedule)
		in.Template = &tpl
	}

	s, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ScheduleHandler) Duplicate(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	var req DuplicateScheduleRequest
	// body is optional: no body means the default "(copy)" name
	_ = c.ShouldBindJSON(&req)

	s, err := h.duplicateUC.Execute(c.Request.Context(), ownerID, id, req.Name)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ScheduleHandler) SetDefault(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(uuid.UUID)

	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := h.setDefaultUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// --------- Helpers ---------

func scheduleIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "schedule id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// templateFromDays places submitted days by their weekday name, so clients
// may send the 7 entries in any order. Missing days stay disabled.
func templateFromDays(days []availability.DayTemplate) availability.WeeklyTemplate {
	tpl := availability.EmptyTemplate()
	for _, d := range days {
		if d.Day < availability.Sunday || d.Day > availability.Saturday {
			continue
		}
		tpl[d.Day] = d
	}
	return tpl
}

func writeScheduleError(c *gin.Context, err error) {
	var vErr *availability.ValidationError

	switch {
	case errors.Is(err, availability.ErrInvalidTimeFormat):
		httperr.BadRequest(c, "invalid_time_format", "times must be HH:MM")
	case errors.Is(err, availability.ErrNotFound):
		httperr.NotFound(c, "schedule_not_found", "schedule not found")
	case errors.Is(err, availability.ErrDefaultSchedule):
		httperr.Conflict(c, "cannot_delete_default", "cannot delete default schedule")
	case errors.Is(err, availability.ErrScheduleInUse):
		httperr.Conflict(c, "schedule_in_use", "schedule in use")
	case errors.Is(err, availability.ErrDuplicateDate):
		httperr.Conflict(c, "duplicate_override_date", "an override already exists for this date")
	case errors.As(err, &vErr):
		httperr.Unprocessable(c, "validation_failed", vErr.Fields)
	default:
		httperr.Internal(c, "internal_error", "unexpected failure")
	}
}
