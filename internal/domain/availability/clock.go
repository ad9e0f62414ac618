package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// Wall-clock values are 24-hour "HH:MM" strings. Because both bounds of a
// slot share a day and are zero-padded, lexicographic comparison orders them.

const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"

	// last start a chained slot may take
	lastSlotStart = "23:00"
)

// ParseDisplay converts a 12-hour display value ("9:00am", "12:15pm") into
// its 24-hour "HH:MM" form. Malformed input returns ErrInvalidTimeFormat;
// callers treat the field as unset rather than failing the whole edit.
func ParseDisplay(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(v, "am"):
		pm = false
	case strings.HasSuffix(v, "pm"):
		pm = true
	default:
		return "", ErrInvalidTimeFormat
	}
	v = v[:len(v)-2]

	hStr, mStr, found := strings.Cut(v, ":")
	if !found || len(mStr) != 2 {
		return "", ErrInvalidTimeFormat
	}

	h, err := strconv.Atoi(hStr)
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return "", ErrInvalidTimeFormat
	}

	if pm {
		if h != 12 {
			h += 12
		}
	} else if h == 12 {
		h = 0
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// Display renders an "HH:MM" value in the 12-hour lowercase am/pm form used
// everywhere in the UI ("17:00" -> "5:00pm"). Invalid input renders empty.
func Display(hm string) string {
	h, m, ok := splitHM(hm)
	if !ok {
		return ""
	}

	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d%s", h12, m, suffix)
}

// Grid enumerates every picker value from 00:00 to 23:45 in 15-minute steps.
func Grid() []string {
	out := make([]string, 0, 96)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

func splitHM(hm string) (h, m int, ok bool) {
	hStr, mStr, found := strings.Cut(hm, ":")
	if !found || len(hStr) != 2 || len(mStr) != 2 {
		return 0, 0, false
	}

	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(mStr)
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func validHM(hm string) bool {
	_, _, ok := splitHM(hm)
	return ok
}

// addMinutes shifts an "HH:MM" value forward, capping at 23:59.
func addMinutes(hm string, delta int) string {
	h, m, ok := splitHM(hm)
	if !ok {
		return hm
	}
	total := h*60 + m + delta
	if total > 23*60+59 {
		total = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func minHM(a, b string) string {
	if a < b {
		return a
	}
	return b
}
