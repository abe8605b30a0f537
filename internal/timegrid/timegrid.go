package timegrid

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidRange возвращается при некорректном окне: end <= start,
// неположительный шаг или границы Slots, не выровненные по шагу.
var ErrInvalidRange = errors.New("timegrid: invalid time range")

// Slots генерирует границы слотов от start (включительно) до end
// (исключительно) с шагом stepMinutes.
// Чистая детерминированная функция: одинаковый вход - одинаковый выход.
func Slots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidRange, stepMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidRange, end, start)
	}
	if startMin%stepMinutes != 0 || endMin%stepMinutes != 0 {
		return nil, fmt.Errorf("%w: %s-%s is not aligned to %d minutes", ErrInvalidRange, start, end, stepMinutes)
	}

	slots := make([]types.TimeString, 0, (endMin-startMin)/stepMinutes)
	for cursor := startMin; cursor < endMin; cursor += stepMinutes {
		slot, err := types.FromMinutes(cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// Labels генерирует подписи временной оси с крупным шагом.
// Окно может быть выровнено лишь по мелкой сетке слотов (09:00-17:45),
// поэтому границы округляются наружу до шага подписей.
// Только для отображения - решения о бронировании на подписи не опираются.
func Labels(start, end types.TimeString) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidRange, end, start)
	}

	startMin -= startMin % domain.LabelStepMinutes
	if rem := endMin % domain.LabelStepMinutes; rem != 0 {
		endMin += domain.LabelStepMinutes - rem
	}

	labels := make([]types.TimeString, 0, (endMin-startMin)/domain.LabelStepMinutes)
	for cursor := startMin; cursor < endMin; cursor += domain.LabelStepMinutes {
		label, err := types.FromMinutes(cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		labels = append(labels, label)
	}

	return labels, nil
}
