package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ckreative/trainer-scheduler/internal/audit"
	"github.com/ckreative/trainer-scheduler/internal/cache"
	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

// memRepo is an in-memory Repository for exercising the lifecycle rules
// without a database.
type memRepo struct {
	schedules map[uuid.UUID]domain.Schedule
}

func newMemRepo() *memRepo {
	return &memRepo{schedules: make(map[uuid.UUID]domain.Schedule)}
}

func (r *memRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Schedule, error) {
	var out []domain.Schedule
	for _, s := range r.schedules {
		if s.OwnerID == ownerID {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return domain.Schedule{}, domain.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *memRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.schedules {
		if s.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) Create(ctx context.Context, s *domain.Schedule) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.schedules[s.ID] = s.Clone()
	return nil
}

func (r *memRepo) Update(ctx context.Context, s *domain.Schedule) error {
	if _, ok := r.schedules[s.ID]; !ok {
		return domain.ErrNotFound
	}
	s.UpdatedAt = time.Now()
	r.schedules[s.ID] = s.Clone()
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.schedules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *memRepo) SetDefault(ctx context.Context, ownerID, id uuid.UUID) error {
	target, ok := r.schedules[id]
	if !ok || target.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	for sid, s := range r.schedules {
		if s.OwnerID == ownerID && s.IsDefault {
			s.IsDefault = false
			r.schedules[sid] = s
		}
	}
	target.IsDefault = true
	r.schedules[id] = target
	return nil
}

type nopSink struct{}

func (nopSink) Log(ownerID uuid.UUID, action, entity, entityID string, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

func noCache() *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(nil)
}

func mustCreate(t *testing.T, repo *memRepo, ownerID uuid.UUID, name string) domain.Schedule {
	t.Helper()
	s, err := NewCreateSchedule(repo, testDispatcher()).Execute(context.Background(), CreateScheduleInput{
		OwnerID:  ownerID,
		Name:     name,
		Timezone: "Europe/Berlin",
	})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return s
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateFirstScheduleForcesDefault(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()

	first := mustCreate(t, repo, ownerID, "Working hours")
	if !first.IsDefault {
		t.Fatal("the owner's first schedule must be the default")
	}

	second := mustCreate(t, repo, ownerID, "Evenings")
	if second.IsDefault {
		t.Fatal("a later schedule must not steal the default")
	}
}

func TestCreateAppliesDefaultTemplate(t *testing.T) {
	repo := newMemRepo()

	s := mustCreate(t, repo, uuid.New(), "Working hours")

	tpl := s.WeeklyTemplate
	if tpl[domain.Sunday].Enabled || tpl[domain.Saturday].Enabled {
		t.Fatal("weekends should start disabled")
	}
	for w := domain.Monday; w <= domain.Friday; w++ {
		if !tpl[w].Enabled || len(tpl[w].Slots) != 1 || tpl[w].Slots[0].Start != "09:00" {
			t.Fatalf("%s = %+v, want 09:00-17:00", w, tpl[w])
		}
	}
	if len(s.Overrides) != 0 {
		t.Fatalf("new schedule has overrides: %v", s.Overrides)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newMemRepo()
	uc := NewCreateSchedule(repo, testDispatcher())

	tests := []struct {
		name     string
		in       CreateScheduleInput
		badField string
	}{
		{
			name:     "empty name",
			in:       CreateScheduleInput{OwnerID: uuid.New(), Timezone: "Europe/Berlin"},
			badField: "name",
		},
		{
			name:     "bogus timezone",
			in:       CreateScheduleInput{OwnerID: uuid.New(), Name: "x", Timezone: "Mars/Olympus"},
			badField: "timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)

			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if _, ok := vErr.Fields[tt.badField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.badField, vErr.Fields)
			}
		})
	}
}

// --------------------------------------------------
// SetDefault
// --------------------------------------------------

func TestSetDefaultSingleton(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()

	a := mustCreate(t, repo, ownerID, "A")
	b := mustCreate(t, repo, ownerID, "B")

	uc := NewSetDefaultSchedule(repo, testDispatcher())
	if err := uc.Execute(context.Background(), ownerID, b.ID); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	all, _ := repo.ListByOwner(context.Background(), ownerID)
	defaults := 0
	for _, s := range all {
		if s.IsDefault {
			defaults++
			if s.ID != b.ID {
				t.Fatalf("wrong schedule is default: %s", s.Name)
			}
		}
		if s.ID == a.ID && s.IsDefault {
			t.Fatal("previous default was not cleared")
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, found %d", defaults)
	}
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func TestDeleteGuards(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()

	def := mustCreate(t, repo, ownerID, "Default")
	extra := mustCreate(t, repo, ownerID, "Extra")

	uc := NewDeleteSchedule(repo, noCache(), testDispatcher())

	t.Run("default schedule cannot be deleted", func(t *testing.T) {
		err := uc.Execute(context.Background(), ownerID, def.ID)
		if !errors.Is(err, domain.ErrDefaultSchedule) {
			t.Fatalf("error = %v, want ErrDefaultSchedule", err)
		}
		if _, err := repo.GetByID(context.Background(), def.ID); err != nil {
			t.Fatal("schedule disappeared despite the guard")
		}
	})

	t.Run("schedule in use cannot be deleted", func(t *testing.T) {
		inUse := repo.schedules[extra.ID]
		inUse.EventTypeCount = 2
		repo.schedules[extra.ID] = inUse

		err := uc.Execute(context.Background(), ownerID, extra.ID)
		if !errors.Is(err, domain.ErrScheduleInUse) {
			t.Fatalf("error = %v, want ErrScheduleInUse", err)
		}
	})

	t.Run("unreferenced non-default deletes fine", func(t *testing.T) {
		free := repo.schedules[extra.ID]
		free.EventTypeCount = 0
		repo.schedules[extra.ID] = free

		if err := uc.Execute(context.Background(), ownerID, extra.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByID(context.Background(), extra.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatal("schedule still present after delete")
		}
	})

	t.Run("someone else's schedule is not found", func(t *testing.T) {
		err := uc.Execute(context.Background(), uuid.New(), def.ID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}

// --------------------------------------------------
// Duplicate
// --------------------------------------------------

func TestDuplicateDeepCopies(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()

	src := mustCreate(t, repo, ownerID, "Working hours")

	withOverride := repo.schedules[src.ID]
	withOverride.Overrides = []domain.DateOverride{{
		Date:  "2026-09-07",
		Type:  domain.OverrideAvailable,
		Slots: []domain.TimeSlot{{Start: "10:00", End: "12:00"}},
	}}
	repo.schedules[src.ID] = withOverride

	uc := NewDuplicateSchedule(repo, testDispatcher())
	dup, err := uc.Execute(context.Background(), ownerID, src.ID, "")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	if dup.ID == src.ID {
		t.Fatal("duplicate kept the source id")
	}
	if dup.IsDefault {
		t.Fatal("duplicate must not be the default")
	}
	if dup.Name != "Working hours (copy)" {
		t.Fatalf("name = %q", dup.Name)
	}
	if len(dup.Overrides) != 1 || dup.Overrides[0].Date != "2026-09-07" {
		t.Fatalf("overrides not copied: %v", dup.Overrides)
	}

	// stored copies are independent
	stored := repo.schedules[dup.ID]
	stored.Overrides[0].Slots[0].Start = "00:00"
	if repo.schedules[src.ID].Overrides[0].Slots[0].Start != "10:00" {
		t.Fatal("duplicate shares override slots with the source")
	}
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func TestUpdateValidationAndPatch(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()
	s := mustCreate(t, repo, ownerID, "Working hours")

	uc := NewUpdateSchedule(repo, noCache(), testDispatcher())

	t.Run("empty name is rejected", func(t *testing.T) {
		empty := ""
		_, err := uc.Execute(context.Background(), UpdateScheduleInput{
			OwnerID:    ownerID,
			ScheduleID: s.ID,
			Name:       &empty,
		})
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
	})

	t.Run("nil fields leave the schedule alone", func(t *testing.T) {
		tz := "America/New_York"
		got, err := uc.Execute(context.Background(), UpdateScheduleInput{
			OwnerID:    ownerID,
			ScheduleID: s.ID,
			Timezone:   &tz,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Name != "Working hours" {
			t.Fatalf("name changed to %q", got.Name)
		}
		if got.Timezone != tz {
			t.Fatalf("timezone = %q", got.Timezone)
		}
	})

	t.Run("unavailable override slots are discarded on save", func(t *testing.T) {
		overrides := []domain.DateOverride{{
			Date:  "2026-09-07",
			Type:  domain.OverrideUnavailable,
			Slots: []domain.TimeSlot{{Start: "09:00", End: "17:00"}},
		}}
		got, err := uc.Execute(context.Background(), UpdateScheduleInput{
			OwnerID:    ownerID,
			ScheduleID: s.ID,
			Overrides:  &overrides,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Overrides[0].Slots != nil {
			t.Fatalf("slots survived: %v", got.Overrides[0].Slots)
		}
	})
}

// --------------------------------------------------
// ResolveDate
// --------------------------------------------------

func TestResolveDate(t *testing.T) {
	repo := newMemRepo()
	ownerID := uuid.New()
	s := mustCreate(t, repo, ownerID, "Working hours")

	blocked := repo.schedules[s.ID]
	blocked.Overrides = []domain.DateOverride{{Date: "2026-09-07", Type: domain.OverrideUnavailable}}
	repo.schedules[s.ID] = blocked

	uc := NewResolveDate(repo, noCache())

	t.Run("override wins over the weekday template", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), ResolveDateInput{
			ScheduleID: s.ID,
			Date:       "2026-09-07", // a Monday
		})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if len(got.Slots) != 0 {
			t.Fatalf("expected no slots, got %v", got.Slots)
		}
	})

	t.Run("uncovered dates use the template", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), ResolveDateInput{
			ScheduleID: s.ID,
			Date:       "2026-09-14", // the following Monday
		})
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if len(got.Slots) != 1 || got.Slots[0].Start != "09:00" {
			t.Fatalf("expected the Monday template, got %v", got.Slots)
		}
		if got.Timezone != "Europe/Berlin" {
			t.Fatalf("timezone = %q", got.Timezone)
		}
	})

	t.Run("malformed date is a validation error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResolveDateInput{
			ScheduleID: s.ID,
			Date:       "next tuesday",
		})
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
	})

	t.Run("unknown schedule is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResolveDateInput{
			ScheduleID: uuid.New(),
			Date:       "2026-09-07",
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}
