package availability

import "time"

// OverrideType says whether a date override opens custom hours or blocks the
// day entirely.
type OverrideType string

const (
	OverrideAvailable   OverrideType = "available"
	OverrideUnavailable OverrideType = "unavailable"
)

// DateOverride is a single-date exception. It fully supersedes the weekly
// template for its date: the template is never consulted, even partially,
// on an overridden date. Overrides carry no recurrence and no ranges.
type DateOverride struct {
	Date  string       `json:"date"` // ISO YYYY-MM-DD
	Type  OverrideType `json:"type"`
	Slots []TimeSlot   `json:"slots,omitempty"`
}

// AddOverride appends ov to the set, rejecting a date that already has an
// override.
func AddOverride(set []DateOverride, ov DateOverride) ([]DateOverride, error) {
	for _, existing := range set {
		if existing.Date == ov.Date {
			return set, ErrDuplicateDate
		}
	}

	out := make([]DateOverride, len(set), len(set)+1)
	copy(out, set)
	return append(out, ov), nil
}

// EditOverride replaces the override that owned originalDate. Keeping the
// original date is always allowed; moving onto a date owned by a different
// override is a duplicate.
func EditOverride(set []DateOverride, originalDate string, ov DateOverride) ([]DateOverride, error) {
	idx := -1
	for i, existing := range set {
		if existing.Date == originalDate {
			idx = i
			continue
		}
		if existing.Date == ov.Date {
			return set, ErrDuplicateDate
		}
	}
	if idx < 0 {
		return set, ErrNotFound
	}

	out := make([]DateOverride, len(set))
	copy(out, set)
	out[idx] = ov
	return out, nil
}

// RemoveOverride drops the override for date, if any.
func RemoveOverride(set []DateOverride, date string) []DateOverride {
	out := make([]DateOverride, 0, len(set))
	for _, existing := range set {
		if existing.Date != date {
			out = append(out, existing)
		}
	}
	return out
}

// Resolve answers "what hours on date d" for a schedule. An override for the
// date wins outright; otherwise the weekday's template applies. Every
// consumer goes through this instead of re-deriving the precedence.
func Resolve(s Schedule, d time.Time) []TimeSlot {
	date := d.Format("2006-01-02")

	for _, ov := range s.Overrides {
		if ov.Date != date {
			continue
		}
		if ov.Type == OverrideUnavailable {
			return nil
		}
		return cloneSlots(ov.Slots)
	}

	day := s.WeeklyTemplate[Weekday(d.Weekday())]
	if !day.Enabled {
		return nil
	}
	return cloneSlots(day.Slots)
}
