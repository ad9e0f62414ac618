package availability

import (
	"errors"
	"testing"
	"time"
)

func mondayTemplate() WeeklyTemplate {
	tpl := EmptyTemplate()
	tpl[Monday].Enabled = true
	tpl[Monday].Slots = []TimeSlot{{Start: "09:00", End: "17:00"}}
	return tpl
}

func TestAddOverride(t *testing.T) {
	t.Run("adds to an empty set", func(t *testing.T) {
		got, err := AddOverride(nil, DateOverride{
			Date: "2026-09-07",
			Type: OverrideUnavailable,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 override, got %d", len(got))
		}
	})

	t.Run("rejects a taken date", func(t *testing.T) {
		set := []DateOverride{{Date: "2026-09-07", Type: OverrideUnavailable}}

		_, err := AddOverride(set, DateOverride{
			Date:  "2026-09-07",
			Type:  OverrideAvailable,
			Slots: []TimeSlot{DefaultSlot()},
		})
		if !errors.Is(err, ErrDuplicateDate) {
			t.Fatalf("error = %v, want ErrDuplicateDate", err)
		}
	})

	t.Run("does not mutate the input set", func(t *testing.T) {
		set := []DateOverride{{Date: "2026-09-07", Type: OverrideUnavailable}}

		got, err := AddOverride(set, DateOverride{Date: "2026-09-08", Type: OverrideUnavailable})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set) != 1 || len(got) != 2 {
			t.Fatalf("expected input untouched: set=%d got=%d", len(set), len(got))
		}
	})
}

func TestEditOverride(t *testing.T) {
	set := []DateOverride{
		{Date: "2026-09-07", Type: OverrideUnavailable},
		{Date: "2026-09-14", Type: OverrideAvailable, Slots: []TimeSlot{DefaultSlot()}},
	}

	t.Run("keeping the original date succeeds", func(t *testing.T) {
		got, err := EditOverride(set, "2026-09-07", DateOverride{
			Date:  "2026-09-07",
			Type:  OverrideAvailable,
			Slots: []TimeSlot{{Start: "10:00", End: "12:00"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Type != OverrideAvailable {
			t.Fatalf("override not replaced: %+v", got[0])
		}
	})

	t.Run("moving to a free date succeeds", func(t *testing.T) {
		got, err := EditOverride(set, "2026-09-07", DateOverride{
			Date: "2026-09-21",
			Type: OverrideUnavailable,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Date != "2026-09-21" {
			t.Fatalf("date not moved: %+v", got[0])
		}
	})

	t.Run("moving onto another override's date is a duplicate", func(t *testing.T) {
		_, err := EditOverride(set, "2026-09-07", DateOverride{
			Date: "2026-09-14",
			Type: OverrideUnavailable,
		})
		if !errors.Is(err, ErrDuplicateDate) {
			t.Fatalf("error = %v, want ErrDuplicateDate", err)
		}
	})

	t.Run("unknown original date is not found", func(t *testing.T) {
		_, err := EditOverride(set, "2026-01-01", DateOverride{
			Date: "2026-01-01",
			Type: OverrideUnavailable,
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestRemoveOverride(t *testing.T) {
	set := []DateOverride{
		{Date: "2026-09-07", Type: OverrideUnavailable},
		{Date: "2026-09-14", Type: OverrideUnavailable},
	}

	got := RemoveOverride(set, "2026-09-07")
	if len(got) != 1 || got[0].Date != "2026-09-14" {
		t.Fatalf("wrong override removed: %v", got)
	}

	got = RemoveOverride(got, "2099-01-01")
	if len(got) != 1 {
		t.Fatalf("removing a missing date changed the set: %v", got)
	}
}

func TestResolve(t *testing.T) {
	// 2026-09-07 and 2026-09-14 are both Mondays
	overridden := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	plain := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	s := Schedule{
		WeeklyTemplate: mondayTemplate(),
		Overrides: []DateOverride{
			{Date: "2026-09-07", Type: OverrideUnavailable},
		},
	}

	t.Run("unavailable override suppresses the template", func(t *testing.T) {
		if slots := Resolve(s, overridden); len(slots) != 0 {
			t.Fatalf("expected no slots, got %v", slots)
		}
	})

	t.Run("other dates fall back to the weekday template", func(t *testing.T) {
		slots := Resolve(s, plain)
		if len(slots) != 1 || slots[0].Start != "09:00" || slots[0].End != "17:00" {
			t.Fatalf("expected the Monday template, got %v", slots)
		}
	})

	t.Run("disabled weekday resolves to nothing", func(t *testing.T) {
		if slots := Resolve(s, saturday); len(slots) != 0 {
			t.Fatalf("expected no slots on Saturday, got %v", slots)
		}
	})

	t.Run("available override fully replaces the template", func(t *testing.T) {
		s := s
		s.Overrides = []DateOverride{{
			Date:  "2026-09-07",
			Type:  OverrideAvailable,
			Slots: []TimeSlot{{Start: "13:00", End: "15:00"}},
		}}

		slots := Resolve(s, overridden)
		if len(slots) != 1 || slots[0].Start != "13:00" {
			t.Fatalf("expected only the override slots, got %v", slots)
		}
	})

	t.Run("resolved slots are copies", func(t *testing.T) {
		slots := Resolve(s, plain)
		slots[0].Start = "00:00"

		again := Resolve(s, plain)
		if again[0].Start != "09:00" {
			t.Fatal("mutating a resolved slice leaked into the schedule")
		}
	})
}
