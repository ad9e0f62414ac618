package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ckreative/trainer-scheduler/internal/cache"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ResolveDateInput struct {
	ScheduleID uuid.UUID
	Date       string // YYYY-MM-DD
}

type ResolvedAvailability struct {
	Date     string            `json:"date"`
	Timezone string            `json:"timezone"`
	Slots    []domain.TimeSlot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// ResolveDate answers "what hours on date D" for booking pages and
// event-type configuration. It is the single entry point to the override
// precedence rule; callers must not re-derive it. Results are cached per
// schedule until the next mutation.
type ResolveDate struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewResolveDate(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *ResolveDate {
	return &ResolveDate{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ResolveDate) Execute(
	ctx context.Context,
	in ResolveDateInput,
) (ResolvedAvailability, error) {

	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return ResolvedAvailability{}, domain.NewValidationError(domain.FieldErrors{
			"date": "expected YYYY-MM-DD",
		})
	}

	if cached, ok := uc.cache.Get(ctx, in.ScheduleID, in.Date); ok {
		return ResolvedAvailability{
			Date:     in.Date,
			Timezone: cached.Timezone,
			Slots:    cached.Slots,
		}, nil
	}

	s, err := uc.repo.GetByID(ctx, in.ScheduleID)
	if err != nil {
		return ResolvedAvailability{}, err
	}

	slots := domain.Resolve(s, day)
	uc.cache.Set(ctx, in.ScheduleID, in.Date, cache.ResolvedDay{
		Timezone: s.Timezone,
		Slots:    slots,
	})

	return ResolvedAvailability{
		Date:     in.Date,
		Timezone: s.Timezone,
		Slots:    slots,
	}, nil
}
