package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/staffservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время начала должно лежать на сетке слотов
	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if startMin%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: startTime %s is not on the %d-minute grid",
			ErrInvalidInput, req.StartTime, domain.SlotStepMinutes)
	}

	return nil
}

// buildAppointmentServices собирает услуги записи в порядке запроса.
// Неактивная или отсутствующая в ответе каталога услуга - ошибка.
func buildAppointmentServices(serviceIDs []int64, services []staffservice.Service) ([]domain.AppointmentService, error) {
	byID := make(map[int64]staffservice.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	result := make([]domain.AppointmentService, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: service id=%d missing in catalog response", ErrServiceNotFound, id)
		}
		if !svc.Active {
			return nil, fmt.Errorf("%w: service id=%d is inactive", ErrServiceNotFound, id)
		}

		result = append(result, domain.AppointmentService{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	return result, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
