package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	staffClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/staffservice"
)

// UseCase use case для создания записи к профессионалу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Чтение записей дня и вставка идут в одной сериализуемой транзакции:
// конкурентная вставка на тот же интервал упирается либо в повтор
// сериализации, либо в exclusion constraint.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, services=%v, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем профессионала
	professional, err := uc.staffClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, staffClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !professional.Active {
		uc.logger.Warn("CreateAppointment: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 4. Получаем услуги из каталога компании профессионала
	services, err := uc.staffClient.GetServices(ctx, professional.CompanyID, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, staffClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: some of services %v not found in company id=%d",
				req.ServiceIDs, professional.CompanyID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	apptServices, err := buildAppointmentServices(req.ServiceIDs, services)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем недельный шаблон профессионала
		ps, err := uc.scheduleRepo.GetByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 5.2. Получаем блокирующие записи дня с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.3. Проверяем интервал и собираем черновик записи
		draft, err := booking.Validate(ps, req.Date, existing, req.StartTime, apptServices)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrInvalidDuration):
				uc.logger.Warn("CreateAppointment: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
			case errors.Is(err, booking.ErrUnalignedStart):
				uc.logger.Warn("CreateAppointment: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case errors.Is(err, booking.ErrOutOfWindow):
				uc.logger.Warn("CreateAppointment: %v", err)
				return fmt.Errorf("%w: %v", ErrOutOfWindow, err)
			case errors.Is(err, booking.ErrOverlap):
				uc.logger.Warn("CreateAppointment: %v", err)
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			default:
				uc.logger.Error("CreateAppointment: validation error: %v", err)
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		draft.CompanyID = professional.CompanyID
		draft.ClientID = req.ClientID
		draft.Notes = req.Notes

		// 5.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, draft)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				// Конкурентная вставка успела раньше
				uc.logger.Warn("CreateAppointment: slot taken by concurrent insert: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d uid=%s", result.ID, result.UID)

	return toResponse(result), nil
}

// toResponse конвертирует доменную запись в response
func toResponse(appt *domain.Appointment) *Response {
	services := make([]Service, 0, len(appt.Services))
	for _, svc := range appt.Services {
		services = append(services, Service{
			ServiceID:       svc.ServiceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	return &Response{
		ID:             appt.ID,
		UID:            appt.UID,
		CompanyID:      appt.CompanyID,
		ProfessionalID: appt.ProfessionalID,
		ClientID:       appt.ClientID,
		Date:           appt.Date,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         string(appt.Status),
		Services:       services,
		Notes:          appt.Notes,
		CreatedAt:      appt.CreatedAt,
		UpdatedAt:      appt.UpdatedAt,
	}
}
