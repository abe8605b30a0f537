package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidDuration возвращается при пустом списке услуг
	// или неположительной суммарной длительности
	ErrInvalidDuration = errors.New("booking: invalid total duration")

	// ErrUnalignedStart возвращается, когда время начала не лежит на
	// сетке слотов
	ErrUnalignedStart = errors.New("booking: start time is not aligned to slot step")

	// ErrOutOfWindow возвращается, когда день недоступен (выходной, нет
	// шаблона) или интервал выходит за рабочее окно
	ErrOutOfWindow = errors.New("booking: interval is outside the working window")

	// ErrOverlap возвращается, когда интервал пересекается с существующей
	// записью или обедом
	ErrOverlap = errors.New("booking: interval overlaps a busy slot")
)

// Validate проверяет кандидата на бронирование и собирает черновик записи.
//
// Интервалы полуоткрытые [start, end): кандидат, начинающийся ровно в
// момент окончания существующей записи, конфликтом не считается.
//
// Проверка носит рекомендательный характер: решающее слово за вставкой
// в сериализуемой транзакции с exclusion constraint - два конкурентных
// запроса могут пройти Validate по одинаковому снимку записей.
func Validate(
	ps domain.ProfessionalSchedule,
	date time.Time,
	existing []*domain.Appointment,
	start types.TimeString,
	services []domain.AppointmentService,
) (*domain.Appointment, error) {
	totalDuration := 0
	for _, svc := range services {
		totalDuration += svc.DurationMinutes
	}
	if len(services) == 0 || totalDuration <= 0 {
		return nil, fmt.Errorf("%w: %d services, %d minutes total", ErrInvalidDuration, len(services), totalDuration)
	}

	// Границы невыровненного кандидата не совпадают с границами
	// существующих записей, и пересечение осталось бы незамеченным
	if startMin, minErr := start.Minutes(); minErr == nil && startMin%domain.SlotStepMinutes != 0 {
		return nil, fmt.Errorf("%w: %s is not on the %d-minute grid", ErrUnalignedStart, start, domain.SlotStepMinutes)
	}

	states, err := availability.IntervalStates(ps, date, existing, start, totalDuration)
	if err != nil {
		return nil, err
	}

	// Выход за окно и выходной важнее пересечения: сначала ищем их
	for _, state := range states {
		if state == availability.SlotDayOff || state == availability.SlotOutsideWindow {
			return nil, fmt.Errorf("%w: %s+%dmin on %s", ErrOutOfWindow, start, totalDuration, date.Format(domain.DateFormat))
		}
	}
	for _, state := range states {
		if state.Blocking() {
			return nil, fmt.Errorf("%w: %s+%dmin on %s", ErrOverlap, start, totalDuration, date.Format(domain.DateFormat))
		}
	}

	endTime, err := start.AddMinutes(totalDuration)
	if err != nil {
		// Выход за пределы суток перехватывается выше как outside_window
		return nil, fmt.Errorf("%w: %v", ErrOutOfWindow, err)
	}

	draft := &domain.Appointment{
		UID:            uuid.New(),
		ProfessionalID: ps.ProfessionalID,
		Date:           truncateToDate(date),
		StartTime:      start,
		EndTime:        endTime,
		Status:         domain.StatusPending,
		Services:       append([]domain.AppointmentService(nil), services...),
	}

	return draft, nil
}

// truncateToDate обнуляет компонент времени
func truncateToDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
