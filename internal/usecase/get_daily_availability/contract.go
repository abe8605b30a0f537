package get_daily_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория недельных шаблонов
type ScheduleRepository interface {
	GetByProfessional(ctx context.Context, professionalID int64) (domain.ProfessionalSchedule, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*staffservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
