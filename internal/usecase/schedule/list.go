package schedule

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

type ListSchedules struct {
	repo domain.Repository
}

func NewListSchedules(repo domain.Repository) *ListSchedules {
	return &ListSchedules{repo: repo}
}

func (uc *ListSchedules) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]domain.Schedule, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
