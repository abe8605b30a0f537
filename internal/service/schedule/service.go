package schedule

import (
	"context"
	"fmt"

	schedulecore "github.com/m04kA/SMC-AppointmentService/internal/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// Service сервис для работы с недельными шаблонами расписаний
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek получает недельный шаблон профессионала
// Публичный метод: шаблон видят клиенты при выборе времени
func (s *Service) GetWeek(ctx context.Context, professionalID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for professional=%d", professionalID)

	ps, err := s.scheduleRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched schedule for professional=%d, days=%d", professionalID, len(ps.Days))
	return models.FromDomainSchedule(ps), nil
}

// UpsertWeek заменяет недельный шаблон профессионала целиком.
// Доступно только самому профессионалу. Шаблон валидируется до записи:
// окна и обеды выровнены по сетке слотов, не больше одной строки на день.
// Замена выполняется в транзакции.
func (s *Service) UpsertWeek(ctx context.Context, professionalID int64, req *models.UpsertWeekRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("UpsertWeek: updating schedule for professional=%d by user=%d, days=%d",
		professionalID, req.UserID, len(req.Days))

	// Свой шаблон меняет только сам профессионал
	if req.UserID != professionalID {
		s.logger.Warn("UpsertWeek: access denied for user=%d to professional=%d schedule", req.UserID, professionalID)
		return nil, ErrAccessDenied
	}

	// Конвертируем дни запроса в domain модели
	days, err := req.ToDomainDays()
	if err != nil {
		s.logger.Warn("UpsertWeek: invalid days for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Валидируем недельный шаблон целиком
	if err := schedulecore.ValidateWeek(days); err != nil {
		s.logger.Warn("UpsertWeek: validation failed for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// Заменяем шаблон в транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.UpsertWeek(txCtx, professionalID, days)
	})
	if err != nil {
		s.logger.Error("UpsertWeek: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpsertWeek - repository error: %v", ErrInternal, err)
	}

	// Читаем сохранённый шаблон
	ps, err := s.scheduleRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("UpsertWeek: failed to read back schedule for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpsertWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWeek: successfully updated schedule for professional=%d", professionalID)
	return models.FromDomainSchedule(ps), nil
}
