package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	"github.com/ckreative/trainer-scheduler/internal/cache"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

type DeleteSchedule struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	scheduleID uuid.UUID,
) error {

	s, err := uc.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if s.OwnerID != ownerID {
		return domain.ErrNotFound
	}

	if s.IsDefault {
		return domain.ErrDefaultSchedule
	}
	if s.EventTypeCount > 0 {
		return domain.ErrScheduleInUse
	}

	if err := uc.repo.Delete(ctx, scheduleID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, scheduleID)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: scheduleID.String(),
		Metadata: map[string]any{"name": s.Name},
	})

	return nil
}
