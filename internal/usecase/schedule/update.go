package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	"github.com/ckreative/trainer-scheduler/internal/cache"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
	"github.com/ckreative/trainer-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// UpdateScheduleInput is a partial patch: nil fields are left untouched.
type UpdateScheduleInput struct {
	OwnerID    uuid.UUID
	ScheduleID uuid.UUID

	Name      *string
	Timezone  *string
	Template  *domain.WeeklyTemplate
	Overrides *[]domain.DateOverride
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSchedule struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	in UpdateScheduleInput,
) (domain.Schedule, error) {

	s, err := uc.repo.GetByID(ctx, in.ScheduleID)
	if err != nil {
		return domain.Schedule{}, err
	}
	// a schedule belonging to someone else is indistinguishable from a
	// missing one
	if s.OwnerID != in.OwnerID {
		return domain.Schedule{}, domain.ErrNotFound
	}

	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Timezone != nil {
		s.Timezone = *in.Timezone
	}
	if in.Template != nil {
		s.WeeklyTemplate = *in.Template
	}
	if in.Overrides != nil {
		s.Overrides = *in.Overrides
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

	if err := uc.repo.Update(ctx, &s); err != nil {
		return domain.Schedule{}, err
	}

	uc.cache.Invalidate(ctx, s.ID)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  in.OwnerID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: s.ID.String(),
	})

	return s, nil
}
