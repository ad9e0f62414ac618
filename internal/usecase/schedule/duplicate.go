package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

type DuplicateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDuplicateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DuplicateSchedule {
	return &DuplicateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute deep-copies a schedule (template and overrides) under a new id.
// The copy is never the default. An empty name falls back to
// "<original> (copy)".
func (uc *DuplicateSchedule) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	scheduleID uuid.UUID,
	name string,
) (domain.Schedule, error) {

	src, err := uc.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return domain.Schedule{}, err
	}
	if src.OwnerID != ownerID {
		return domain.Schedule{}, domain.ErrNotFound
	}

	copied := src.Clone()
	copied.ID = uuid.New()
	copied.IsDefault = false
	copied.EventTypeCount = 0
	if name != "" {
		copied.Name = name
	} else {
		copied.Name = src.Name + " (copy)"
	}

	if err := uc.repo.Create(ctx, &copied); err != nil {
		return domain.Schedule{}, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "schedule_duplicated",
		Entity:   "schedule",
		EntityID: copied.ID.String(),
		Metadata: map[string]any{"source_id": scheduleID.String()},
	})

	return copied, nil
}
