package availability

import "strings"

// SummaryStyle selects between the two summary renderings used in the
// product: Compact is the single-line editor header, Grouped is the
// per-signature list-view form. Both share the grouping logic below.
type SummaryStyle int

const (
	Compact SummaryStyle = iota
	Grouped
)

const noAvailability = "No availability set"

// distinct slot ranges shown before the summary is elided with "..."
const maxSummaryRanges = 2

// Summarize compresses the weekly template into a short human-readable
// string for list views and the editor header.
func Summarize(tpl WeeklyTemplate, style SummaryStyle) string {
	var enabled []Weekday
	for w := Sunday; w <= Saturday; w++ {
		if tpl[w].Enabled {
			enabled = append(enabled, w)
		}
	}
	if len(enabled) == 0 {
		return noAvailability
	}

	if style == Grouped {
		return summarizeGrouped(tpl, enabled)
	}

	var allSlots []TimeSlot
	for _, w := range enabled {
		allSlots = append(allSlots, tpl[w].Slots...)
	}
	return dayLabel(enabled) + ", " + timeLabel(allSlots)
}

type signatureGroup struct {
	days  []Weekday
	slots []TimeSlot
}

// summarizeGrouped renders one "<days>: <times>" segment per distinct
// time-signature, joined with " | ". Group order follows the first day that
// carries each signature.
func summarizeGrouped(tpl WeeklyTemplate, enabled []Weekday) string {
	var order []string
	groups := make(map[string]*signatureGroup)

	for _, w := range enabled {
		sig := slotSignature(tpl[w].Slots)
		g, ok := groups[sig]
		if !ok {
			g = &signatureGroup{slots: tpl[w].Slots}
			groups[sig] = g
			order = append(order, sig)
		}
		g.days = append(g.days, w)
	}

	parts := make([]string, 0, len(order))
	for _, sig := range order {
		g := groups[sig]
		parts = append(parts, dayLabel(g.days)+": "+timeLabel(g.slots))
	}
	return strings.Join(parts, " | ")
}

// dayLabel names a set of weekdays the way the product abbreviates them:
// the three recognizable shapes get their own labels, anything else is the
// short day names joined with commas.
func dayLabel(days []Weekday) string {
	if len(days) == 7 {
		return "Every day"
	}

	var mask uint8
	for _, w := range days {
		mask |= 1 << uint(w)
	}

	const weekdaysMask = 1<<Monday | 1<<Tuesday | 1<<Wednesday | 1<<Thursday | 1<<Friday
	const weekendMask = 1<<Sunday | 1<<Saturday

	switch mask {
	case weekdaysMask:
		return "Mon - Fri"
	case weekendMask:
		return "Weekends"
	}

	names := make([]string, len(days))
	for i, w := range days {
		names[i] = w.Short()
	}
	return strings.Join(names, ", ")
}

// timeLabel formats up to the first two distinct slot ranges, appending
// "..." when more exist.
func timeLabel(slots []TimeSlot) string {
	var ranges []string
	seen := make(map[string]bool)

	truncated := false
	for _, s := range slots {
		r := s.DisplayRange()
		if seen[r] {
			continue
		}
		seen[r] = true
		if len(ranges) == maxSummaryRanges {
			truncated = true
			break
		}
		ranges = append(ranges, r)
	}

	label := strings.Join(ranges, ", ")
	if truncated {
		label += "..."
	}
	return label
}
