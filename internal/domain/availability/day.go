package availability

// DayTemplate is one weekly day's availability: an enabled flag plus an
// ordered slot list. All transforms are pure, returning a new value and
// leaving the receiver untouched, so editor drafts stay independently
// testable without any rendering layer.
type DayTemplate struct {
	Day     Weekday    `json:"day"`
	Enabled bool       `json:"enabled"`
	Slots   []TimeSlot `json:"slots"`
}

// SlotField names one bound of a slot for SetSlotField.
type SlotField string

const (
	SlotStart SlotField = "start"
	SlotEnd   SlotField = "end"
)

func (d DayTemplate) clone() DayTemplate {
	d.Slots = cloneSlots(d.Slots)
	return d
}

// Toggle enables or disables the day. Enabling a day with no slots seeds one
// default 09:00-17:00 slot. Disabling clears the slot list: re-enabling
// always starts from the seeded default, matching how the editor re-seeds.
func (d DayTemplate) Toggle(enabled bool) DayTemplate {
	out := d.clone()
	out.Enabled = enabled

	if !enabled {
		out.Slots = nil
		return out
	}
	if len(out.Slots) == 0 {
		out.Slots = []TimeSlot{DefaultSlot()}
	}
	return out
}

// AddSlot appends a slot chained one hour after the last slot's end, with
// both bounds clamped to 23:00 so late additions never roll past midnight.
// An empty day gets the default slot instead.
func (d DayTemplate) AddSlot() DayTemplate {
	out := d.clone()

	if len(out.Slots) == 0 {
		out.Slots = []TimeSlot{DefaultSlot()}
		return out
	}

	last := out.Slots[len(out.Slots)-1]
	start := minHM(addMinutes(last.End, 60), lastSlotStart)
	end := minHM(addMinutes(start, 60), lastSlotStart)
	out.Slots = append(out.Slots, TimeSlot{Start: start, End: end})
	return out
}

// RemoveSlot drops the slot at index i. Removing the last slot also disables
// the day. Out-of-range indexes are ignored.
func (d DayTemplate) RemoveSlot(i int) DayTemplate {
	if i < 0 || i >= len(d.Slots) {
		return d
	}

	out := d.clone()
	out.Slots = append(out.Slots[:i], out.Slots[i+1:]...)
	if len(out.Slots) == 0 {
		out.Slots = nil
		out.Enabled = false
	}
	return out
}

// SetSlotField replaces one bound of one slot. No cross-slot revalidation
// happens here: ordering is checked at save time so a half-typed edit never
// blocks the user mid-keystroke.
func (d DayTemplate) SetSlotField(i int, field SlotField, value string) DayTemplate {
	if i < 0 || i >= len(d.Slots) {
		return d
	}

	out := d.clone()
	switch field {
	case SlotStart:
		out.Slots[i].Start = value
	case SlotEnd:
		out.Slots[i].End = value
	}
	return out
}
