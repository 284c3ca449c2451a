package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

const endOfDay TimeOfDay = 24 * 60

// ParseTimeOfDay parses a zero-padded "HH:MM" value.
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse(timezone.TimeLayout, hm)
	if err != nil || len(hm) != len(timezone.TimeLayout) {
		return 0, fmt.Errorf("invalid time of day %q", hm)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayOf returns the wall-clock time of t in loc.
func TimeOfDayOf(t time.Time, loc *time.Location) TimeOfDay {
	t = t.In(loc)
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// On places t on the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		date.Location(),
	)
}
