package schedule

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельных шаблонов
type ScheduleRepository interface {
	GetByProfessional(ctx context.Context, professionalID int64) (domain.ProfessionalSchedule, error)
	UpsertWeek(ctx context.Context, professionalID int64, days []domain.WeekdaySchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
