package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/timegrid"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// SlotState классификация слота. Состояния взаимоисключающие,
// проверяются в порядке приоритета: day_off, outside_window, lunch,
// booked, free - первое совпавшее побеждает.
type SlotState string

const (
	SlotDayOff        SlotState = "day_off"
	SlotOutsideWindow SlotState = "outside_window"
	SlotLunch         SlotState = "lunch"
	SlotBooked        SlotState = "booked"
	SlotFree          SlotState = "free"
)

// Blocking возвращает true для состояний, запрещающих бронирование
func (s SlotState) Blocking() bool {
	return s != SlotFree
}

// Slot слот дневной сетки с вычисленным состоянием
type Slot struct {
	Start types.TimeString
	State SlotState
}

var (
	// ErrInvalidInterval возвращается при некорректном интервале запроса
	// (неположительная длительность) - это ошибка входных данных
	ErrInvalidInterval = errors.New("availability: invalid interval")

	// ErrInvalidAppointment возвращается при некорректных временах записи
	ErrInvalidAppointment = errors.New("availability: appointment has invalid time range")
)

// interval полуинтервал [start, end) в минутах с начала суток
type interval struct {
	start int
	end   int
}

// contains возвращает true, если точка попадает в полуинтервал
func (i interval) contains(point int) bool {
	return point >= i.start && point < i.end
}

// dayContext предвычисленное состояние дня: окно, обед и занятые интервалы
type dayContext struct {
	window interval
	lunch  *interval
	booked []interval
}

// Classify строит полную дневную сетку слотов профессионала на дату
// и классифицирует каждый слот. Чистая функция своих входов: при
// изменении записей или шаблона пересчитывается заново, внутреннего
// кэша нет.
//
// Когда рабочего окна нет (выходной или пустой шаблон), сетка строится
// по отображаемому окну 08:00-18:00 и все слоты помечаются day_off -
// это нужно только для отрисовки пустой сетки.
func Classify(ps domain.ProfessionalSchedule, date time.Time, appointments []*domain.Appointment) ([]Slot, error) {
	window, ok := schedule.ResolveDay(ps, date)
	if !ok {
		return classifyUnavailableDay()
	}

	day, err := buildDayContext(window, appointments)
	if err != nil {
		return nil, err
	}

	grid, err := timegrid.Slots(window.Start, window.End, domain.SlotStepMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(grid))
	for _, start := range grid {
		point, err := start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		slots = append(slots, Slot{Start: start, State: day.stateAt(point)})
	}

	return slots, nil
}

// classifyUnavailableDay строит сетку по отображаемому окну,
// все слоты - day_off
func classifyUnavailableDay() ([]Slot, error) {
	fallback := schedule.DisplayWindow()

	grid, err := timegrid.Slots(fallback.Start, fallback.End, domain.SlotStepMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(grid))
	for _, start := range grid {
		slots = append(slots, Slot{Start: start, State: SlotDayOff})
	}
	return slots, nil
}

// IntervalStates классифицирует каждую 15-минутную границу интервала
// [start, start+durationMinutes). Для недоступного дня все границы - day_off.
// Именно эта проверка авторитетна для бронирования: дневная сетка Classify -
// лишь то же правило, применённое слот за слотом.
func IntervalStates(
	ps domain.ProfessionalSchedule,
	date time.Time,
	appointments []*domain.Appointment,
	start types.TimeString,
	durationMinutes int,
) ([]SlotState, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInterval, durationMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	endMin := startMin + durationMinutes

	boundaries := make([]int, 0, (durationMinutes+domain.SlotStepMinutes-1)/domain.SlotStepMinutes)
	for point := startMin; point < endMin; point += domain.SlotStepMinutes {
		boundaries = append(boundaries, point)
	}

	window, ok := schedule.ResolveDay(ps, date)
	if !ok {
		states := make([]SlotState, len(boundaries))
		for i := range states {
			states[i] = SlotDayOff
		}
		return states, nil
	}

	day, err := buildDayContext(window, appointments)
	if err != nil {
		return nil, err
	}

	states := make([]SlotState, len(boundaries))
	for i, point := range boundaries {
		// Интервал может выходить за пределы суток - такие границы вне окна
		if point >= 24*60 {
			states[i] = SlotOutsideWindow
			continue
		}
		states[i] = day.stateAt(point)
	}

	return states, nil
}

// IsIntervalFree возвращает true, если каждая 15-минутная граница
// интервала [start, start+durationMinutes) свободна. Занятость, обед,
// выход за окно и выходной одинаково блокируют интервал.
func IsIntervalFree(
	ps domain.ProfessionalSchedule,
	date time.Time,
	appointments []*domain.Appointment,
	start types.TimeString,
	durationMinutes int,
) (bool, error) {
	states, err := IntervalStates(ps, date, appointments, start, durationMinutes)
	if err != nil {
		return false, err
	}

	for _, state := range states {
		if state.Blocking() {
			return false, nil
		}
	}
	return true, nil
}

// buildDayContext предвычисляет минуты окна, обеда и занятых интервалов.
// Отменённые записи слоты не занимают и в контекст не попадают.
func buildDayContext(window schedule.Window, appointments []*domain.Appointment) (*dayContext, error) {
	windowStart, err := window.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: window start: %v", ErrInvalidInterval, err)
	}
	windowEnd, err := window.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: window end: %v", ErrInvalidInterval, err)
	}

	day := &dayContext{window: interval{start: windowStart, end: windowEnd}}

	if window.HasLunch() {
		lunchStart, err := window.LunchStart.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: lunch start: %v", ErrInvalidInterval, err)
		}
		lunchEnd, err := window.LunchEnd.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: lunch end: %v", ErrInvalidInterval, err)
		}
		day.lunch = &interval{start: lunchStart, end: lunchEnd}
	}

	day.booked = make([]interval, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.Blocks() {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d start: %v", ErrInvalidAppointment, appt.ID, err)
		}
		apptEnd, err := appt.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d end: %v", ErrInvalidAppointment, appt.ID, err)
		}
		if apptEnd <= apptStart {
			return nil, fmt.Errorf("%w: appointment id=%d %s-%s", ErrInvalidAppointment, appt.ID, appt.StartTime, appt.EndTime)
		}

		day.booked = append(day.booked, interval{start: apptStart, end: apptEnd})
	}

	return day, nil
}

// stateAt классифицирует одну границу слота.
// Порядок проверок фиксирован: окно, обед, записи.
func (d *dayContext) stateAt(point int) SlotState {
	if !d.window.contains(point) {
		return SlotOutsideWindow
	}
	if d.lunch != nil && d.lunch.contains(point) {
		return SlotLunch
	}
	for _, b := range d.booked {
		if b.contains(point) {
			return SlotBooked
		}
	}
	return SlotFree
}
