package availability

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday is a calendar weekday, Sunday = 0 through Saturday = 6. On the
// wire it travels as the full English day name ("Sunday" ... "Saturday").
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return time.Weekday(w).String()
}

// Short returns the abbreviated day name used in summaries ("Mon").
func (w Weekday) Short() string {
	if w < Sunday || w > Saturday {
		return ""
	}
	return shortDayNames[w]
}

func ParseWeekday(s string) (Weekday, error) {
	for w := Sunday; w <= Saturday; w++ {
		if time.Weekday(w).String() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	if w < Sunday || w > Saturday {
		return nil, fmt.Errorf("weekday out of range: %d", int(w))
	}
	return json.Marshal(w.String())
}

func (w *Weekday) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseWeekday(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
