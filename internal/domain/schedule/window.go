package schedule

import (
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Window is the effective open/close range of a professional on a date.
// Breaks are occupied sub-intervals such as lunch.
type Window struct {
	Open   TimeOfDay
	Close  TimeOfDay
	Breaks []Interval
}

// Overrides reports whether exc replaces the weekly hours. Inactive
// exceptions and unknown kinds do not.
func Overrides(exc *models.ScheduleException) bool {
	if exc == nil || !exc.Active {
		return false
	}
	return exc.Kind == models.ExceptionClosed || exc.Kind == models.ExceptionSpecialHours
}

// ResolveWindow picks the effective window: an active CLOSED exception
// closes the day, an active SPECIAL_HOURS exception replaces the weekly
// hours, otherwise the active weekly hours apply. ok is false when the
// professional does not work that day.
func ResolveWindow(exc *models.ScheduleException, wh *models.WorkingHours) (Window, bool) {
	if Overrides(exc) {
		switch exc.Kind {
		case models.ExceptionClosed:
			return Window{}, false
		case models.ExceptionSpecialHours:
			iv, err := NewInterval(exc.OpenTime, exc.CloseTime)
			if err != nil || !iv.Valid() {
				return Window{}, false
			}
			return Window{Open: iv.Start, Close: iv.End}, true
		}
	}

	return WeeklyWindow(wh)
}

// WeeklyWindow converts active working hours to a window.
func WeeklyWindow(wh *models.WorkingHours) (Window, bool) {
	if wh == nil || !wh.Active {
		return Window{}, false
	}

	iv, err := NewInterval(wh.OpenTime, wh.CloseTime)
	if err != nil || !iv.Valid() {
		return Window{}, false
	}

	w := Window{Open: iv.Start, Close: iv.End}
	if wh.LunchStart != "" && wh.LunchEnd != "" {
		if lunch, err := NewInterval(wh.LunchStart, wh.LunchEnd); err == nil && lunch.Valid() {
			w.Breaks = append(w.Breaks, lunch)
		}
	}
	return w, true
}
