package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

type SetDefaultSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetDefaultSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetDefaultSchedule {
	return &SetDefaultSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute promotes a schedule to be the owner's default. The repository
// flips the previous default off in the same transaction, so exactly one
// default exists at any time.
func (uc *SetDefaultSchedule) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	scheduleID uuid.UUID,
) error {

	if err := uc.repo.SetDefault(ctx, ownerID, scheduleID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "schedule_set_default",
		Entity:   "schedule",
		EntityID: scheduleID.String(),
	})

	return nil
}
