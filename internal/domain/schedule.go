package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WeekdaySchedule is one weekday entry of a professional's weekly template:
// working window, optional lunch break and the day-off flag.
// Times are meaningless when IsDayOff is set.
type WeekdaySchedule struct {
	Weekday    time.Weekday
	StartTime  types.TimeString
	EndTime    types.TimeString
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString
	IsDayOff   bool
}

// HasLunch returns true if the entry carries a lunch break
func (w WeekdaySchedule) HasLunch() bool {
	return w.LunchStart != nil && w.LunchEnd != nil
}

// ProfessionalSchedule is a professional's full weekly template.
// At most one entry per weekday; an empty Days slice means the
// professional has not configured a schedule yet and no date is bookable.
type ProfessionalSchedule struct {
	ProfessionalID int64
	Days           []WeekdaySchedule
}

// DayFor returns the entry for the given weekday, if present
func (p ProfessionalSchedule) DayFor(weekday time.Weekday) (WeekdaySchedule, bool) {
	for _, day := range p.Days {
		if day.Weekday == weekday {
			return day, true
		}
	}
	return WeekdaySchedule{}, false
}
