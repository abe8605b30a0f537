package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidWindow возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidWindow = errors.New("schedule: start_time must be before end_time")

	// ErrInvalidTime возвращается при некорректном формате времени в шаблоне
	ErrInvalidTime = errors.New("schedule: invalid time value")

	// ErrUnalignedTime возвращается, когда время не выровнено по сетке слотов
	ErrUnalignedTime = errors.New("schedule: time is not aligned to slot step")

	// ErrLunchOutsideWindow возвращается, когда обед выходит за рабочее окно
	ErrLunchOutsideWindow = errors.New("schedule: lunch break must lie within the working window")

	// ErrIncompleteLunch возвращается, когда указана только одна граница обеда
	ErrIncompleteLunch = errors.New("schedule: lunch break requires both start and end")

	// ErrDuplicateWeekday возвращается при двух записях на один день недели
	ErrDuplicateWeekday = errors.New("schedule: duplicate weekday entry")
)

// ValidateDay проверяет одну запись недельного шаблона.
// Для выходного дня времена не проверяются.
func ValidateDay(day domain.WeekdaySchedule) error {
	if day.IsDayOff {
		return nil
	}

	startMin, err := day.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %s start_time: %v", ErrInvalidTime, day.Weekday, err)
	}
	endMin, err := day.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %s end_time: %v", ErrInvalidTime, day.Weekday, err)
	}

	if startMin >= endMin {
		return fmt.Errorf("%w: %s %s-%s", ErrInvalidWindow, day.Weekday, day.StartTime, day.EndTime)
	}

	// Границы окна должны лежать на сетке слотов, иначе сетка не строится
	if startMin%domain.SlotStepMinutes != 0 || endMin%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s %s-%s", ErrUnalignedTime, day.Weekday, day.StartTime, day.EndTime)
	}

	if day.LunchStart == nil && day.LunchEnd == nil {
		return nil
	}
	if day.LunchStart == nil || day.LunchEnd == nil {
		return fmt.Errorf("%w: %s", ErrIncompleteLunch, day.Weekday)
	}

	lunchStartMin, err := day.LunchStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %s lunch_start: %v", ErrInvalidTime, day.Weekday, err)
	}
	lunchEndMin, err := day.LunchEnd.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %s lunch_end: %v", ErrInvalidTime, day.Weekday, err)
	}

	if lunchStartMin >= lunchEndMin {
		return fmt.Errorf("%w: %s lunch %s-%s", ErrInvalidWindow, day.Weekday, *day.LunchStart, *day.LunchEnd)
	}
	if lunchStartMin%domain.SlotStepMinutes != 0 || lunchEndMin%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s lunch %s-%s", ErrUnalignedTime, day.Weekday, *day.LunchStart, *day.LunchEnd)
	}
	if lunchStartMin < startMin || lunchEndMin > endMin {
		return fmt.Errorf("%w: %s lunch %s-%s, window %s-%s",
			ErrLunchOutsideWindow, day.Weekday, *day.LunchStart, *day.LunchEnd, day.StartTime, day.EndTime)
	}

	return nil
}

// ValidateWeek проверяет недельный шаблон целиком:
// не больше одной записи на день недели, каждая запись корректна.
func ValidateWeek(days []domain.WeekdaySchedule) error {
	seen := make(map[time.Weekday]bool, 7)

	for _, day := range days {
		if seen[day.Weekday] {
			return fmt.Errorf("%w: %s", ErrDuplicateWeekday, day.Weekday)
		}
		seen[day.Weekday] = true

		if err := ValidateDay(day); err != nil {
			return err
		}
	}

	return nil
}
