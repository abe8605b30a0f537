package get_daily_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AppointmentService/internal/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/timegrid"
)

// UseCase use case для получения дневной сетки слотов профессионала
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// Execute строит дневную сетку слотов на дату.
// Выходной и пустой шаблон не являются ошибкой: сетка строится по
// отображаемому окну, все слоты помечаются day_off.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDailyAvailability: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDailyAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование профессионала
	professional, err := uc.staffClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, staffClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetDailyAvailability: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetDailyAvailability: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// Профессионал из чужой компании для запрашивающего не существует
	if req.CompanyID > 0 && professional.CompanyID != req.CompanyID {
		uc.logger.Warn("GetDailyAvailability: professional id=%d does not belong to company=%d",
			req.ProfessionalID, req.CompanyID)
		return nil, ErrProfessionalNotFound
	}

	// 3. Получаем недельный шаблон (пустой шаблон - не ошибка)
	ps, err := uc.scheduleRepo.GetByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetDailyAvailability: failed to get schedule for professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Получаем блокирующие записи на дату
	appointments, err := uc.appointmentRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetDailyAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Классифицируем сетку
	slots, err := availability.Classify(ps, req.Date, appointments)
	if err != nil {
		uc.logger.Error("GetDailyAvailability: failed to classify slots: %v", err)
		return nil, fmt.Errorf("%w: failed to classify slots: %v", ErrInternal, err)
	}

	// 6. Подписи строятся по тому же окну, что и сетка
	window, ok := schedule.ResolveDay(ps, req.Date)
	if !ok {
		window = schedule.DisplayWindow()
	}

	labels, err := timegrid.Labels(window.Start, window.End)
	if err != nil {
		uc.logger.Error("GetDailyAvailability: failed to build labels: %v", err)
		return nil, fmt.Errorf("%w: failed to build labels: %v", ErrInternal, err)
	}

	resp := &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Slots:          make([]Slot, 0, len(slots)),
		Labels:         labels,
	}

	for _, slot := range slots {
		if slot.State == availability.SlotFree {
			resp.Available = true
		}
		resp.Slots = append(resp.Slots, Slot{
			StartTime: slot.Start,
			State:     slot.State,
		})
	}

	uc.logger.Info("GetDailyAvailability: professional=%d, date=%s, slots=%d, available=%t",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), len(resp.Slots), resp.Available)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
