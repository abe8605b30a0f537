package schedule

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Window is the effective working window of a professional for one date:
// start/end of the working day plus the optional lunch break.
type Window struct {
	Start      types.TimeString
	End        types.TimeString
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString
}

// HasLunch returns true if the window carries a lunch break
func (w Window) HasLunch() bool {
	return w.LunchStart != nil && w.LunchEnd != nil
}

// ResolveDay возвращает рабочее окно профессионала на указанную дату.
// Дата отображается на день недели, по нему ищется запись недельного
// шаблона. Нет записи или выходной - окно отсутствует (ok=false).
// У профессионала без шаблона вообще ни одна дата не доступна:
// дефолтного рабочего окна для бронирования НЕ существует.
func ResolveDay(ps domain.ProfessionalSchedule, date time.Time) (Window, bool) {
	day, found := ps.DayFor(date.Weekday())
	if !found || day.IsDayOff {
		return Window{}, false
	}

	return Window{
		Start:      day.StartTime,
		End:        day.EndTime,
		LunchStart: day.LunchStart,
		LunchEnd:   day.LunchEnd,
	}, true
}

// DisplayWindow возвращает окно 08:00-18:00 для отрисовки пустой сетки,
// когда рабочего окна нет. Использовать ТОЛЬКО для отображения:
// валидация бронирования на это окно никогда не опирается.
func DisplayWindow() Window {
	return Window{
		Start: types.TimeString(domain.DisplayFallbackStart),
		End:   types.TimeString(domain.DisplayFallbackEnd),
	}
}
