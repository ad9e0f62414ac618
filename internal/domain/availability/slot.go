package availability

import "strings"

// TimeSlot is a contiguous start/end interval within one day, both bounds
// 24-hour "HH:MM" on a 15-minute grid.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func DefaultSlot() TimeSlot {
	return TimeSlot{Start: DefaultSlotStart, End: DefaultSlotEnd}
}

func (s TimeSlot) Valid() bool {
	return validHM(s.Start) && validHM(s.End) && s.Start < s.End
}

// DisplayRange renders the slot as "9:00am - 5:00pm".
func (s TimeSlot) DisplayRange() string {
	return Display(s.Start) + " - " + Display(s.End)
}

func cloneSlots(slots []TimeSlot) []TimeSlot {
	if slots == nil {
		return nil
	}
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// slotSignature serializes an ordered slot list to a canonical string, used
// to group days sharing an identical time pattern.
func slotSignature(slots []TimeSlot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.Start + "-" + s.End
	}
	return strings.Join(parts, ",")
}
