package sim

import (
	"fmt"
	"time"
)

// MinutesPerDay bounds arrival times; departures may run past midnight.
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" wall-clock label into minutes since midnight.
func ParseClock(s string) (int64, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return int64(t.Hour()*60 + t.Minute()), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
// Hours are not wrapped, so a departure after midnight prints as "24:05".
func FormatClock(minutes int64) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
