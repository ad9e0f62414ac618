package schedule

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	scheduleID uuid.UUID,
) (domain.Schedule, error) {

	s, err := uc.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return domain.Schedule{}, err
	}
	if s.OwnerID != ownerID {
		return domain.Schedule{}, domain.ErrNotFound
	}
	return s, nil
}
