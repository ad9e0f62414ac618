package timezone

import "time"

// Schedules carry an IANA zone string that is validated and passed through;
// bookers see wall-clock times, never converted instants.

const DefaultTimezone = "Etc/UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
