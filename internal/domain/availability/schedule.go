package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WeeklyTemplate is the 7-day recurring pattern, indexed by Weekday in
// canonical Sunday..Saturday order.
type WeeklyTemplate [7]DayTemplate

// EmptyTemplate returns a template with every day disabled.
func EmptyTemplate() WeeklyTemplate {
	var tpl WeeklyTemplate
	for w := Sunday; w <= Saturday; w++ {
		tpl[w] = DayTemplate{Day: w}
	}
	return tpl
}

// DefaultTemplate is what a freshly created schedule starts from:
// Monday-Friday 09:00-17:00, weekends disabled.
func DefaultTemplate() WeeklyTemplate {
	tpl := EmptyTemplate()
	for w := Monday; w <= Friday; w++ {
		tpl[w].Enabled = true
		tpl[w].Slots = []TimeSlot{DefaultSlot()}
	}
	return tpl
}

func (t WeeklyTemplate) clone() WeeklyTemplate {
	for i := range t {
		t[i] = t[i].clone()
	}
	return t
}

// Schedule is the aggregate root: a named, timezone-tagged weekly template
// plus its date overrides. The JSON shape matches the rest of the product.
type Schedule struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        uuid.UUID      `json:"-"`
	Name           string         `json:"name"`
	IsDefault      bool           `json:"isDefault"`
	Timezone       string         `json:"timezone"`
	WeeklyTemplate WeeklyTemplate `json:"schedule"`
	Overrides      []DateOverride `json:"dateOverrides"`
	EventTypeCount int            `json:"eventTypeCount"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Clone deep-copies the aggregate so drafts and duplicates never share slot
// or override storage with the original.
func (s Schedule) Clone() Schedule {
	s.WeeklyTemplate = s.WeeklyTemplate.clone()
	overrides := make([]DateOverride, len(s.Overrides))
	for i, ov := range s.Overrides {
		ov.Slots = cloneSlots(ov.Slots)
		overrides[i] = ov
	}
	s.Overrides = overrides
	return s
}

// Normalize applies the save-time cleanups that are not validation failures:
// unavailable overrides drop whatever slots were typed before the type was
// switched, and day indexes are forced onto their canonical weekday.
func (s Schedule) Normalize() Schedule {
	out := s.Clone()
	for w := Sunday; w <= Saturday; w++ {
		out.WeeklyTemplate[w].Day = w
	}
	for i := range out.Overrides {
		if out.Overrides[i].Type == OverrideUnavailable {
			out.Overrides[i].Slots = nil
		}
	}
	return out
}

// Validate runs every save-time rule and collects field-level messages.
// Same-day slot overlap is deliberately not checked: the product has never
// rejected overlapping slots and consumers tolerate them.
func (s Schedule) Validate() FieldErrors {
	errs := FieldErrors{}

	if s.Name == "" {
		errs["name"] = "name is required"
	}

	for w, day := range s.WeeklyTemplate {
		if !day.Enabled {
			continue
		}
		for i, slot := range day.Slots {
			if !validHM(slot.Start) || !validHM(slot.End) {
				errs[fmt.Sprintf("schedule.%d.slots.%d", w, i)] = "invalid time"
				continue
			}
			if slot.Start >= slot.End {
				errs[fmt.Sprintf("schedule.%d.slots.%d", w, i)] = "start must be before end"
			}
		}
	}

	seen := make(map[string]bool, len(s.Overrides))
	for i, ov := range s.Overrides {
		key := fmt.Sprintf("dateOverrides.%d", i)

		if _, err := time.Parse("2006-01-02", ov.Date); err != nil {
			errs[key+".date"] = "invalid date"
		} else if seen[ov.Date] {
			errs[key+".date"] = "date already has an override"
		}
		seen[ov.Date] = true

		switch ov.Type {
		case OverrideAvailable:
			if len(ov.Slots) == 0 {
				errs[key+".slots"] = "at least one time slot is required"
			}
			for j, slot := range ov.Slots {
				if !slot.Valid() {
					errs[fmt.Sprintf("%s.slots.%d", key, j)] = "start must be before end"
				}
			}
		case OverrideUnavailable:
			// slots are discarded by Normalize
		default:
			errs[key+".type"] = "unknown override type"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
