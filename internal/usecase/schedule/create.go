package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
	"github.com/ckreative/trainer-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateScheduleInput struct {
	OwnerID  uuid.UUID
	Name     string
	Timezone string

	// nil template means the standard Mon-Fri 09:00-17:00 start
	Template  *domain.WeeklyTemplate
	Overrides []domain.DateOverride
	IsDefault bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (domain.Schedule, error) {

	tpl := domain.DefaultTemplate()
	if in.Template != nil {
		tpl = *in.Template
	}

	if in.Timezone == "" {
		in.Timezone = timezone.DefaultTimezone
	}

	s := domain.Schedule{
		ID:             uuid.New(),
		OwnerID:        in.OwnerID,
		Name:           in.Name,
		Timezone:       in.Timezone,
		WeeklyTemplate: tpl,
		Overrides:      in.Overrides,
		IsDefault:      in.IsDefault,
	}

	s = s.Normalize()
	fields := s.Validate()
	if !timezone.IsValid(s.Timezone) {
		if fields == nil {
			fields = domain.FieldErrors{}
		}
		fields["timezone"] = "unknown timezone"
	}
	if fields != nil {
		return domain.Schedule{}, domain.NewValidationError(fields)
	}

	// the owner's first schedule is always the default, whatever was asked
	count, err := uc.repo.CountByOwner(ctx, in.OwnerID)
	if err != nil {
		return domain.Schedule{}, err
	}
	if count == 0 {
		s.IsDefault = true
	}

	if err := uc.repo.Create(ctx, &s); err != nil {
		return domain.Schedule{}, err
	}

	if s.IsDefault && count > 0 {
		if err := uc.repo.SetDefault(ctx, in.OwnerID, s.ID); err != nil {
			return domain.Schedule{}, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  in.OwnerID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: s.ID.String(),
		Metadata: map[string]any{"name": s.Name, "is_default": s.IsDefault},
	})

	return s, nil
}
