package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID профессионала
	ServiceIDs     []int64          // ID услуг из каталога компании
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	UID            uuid.UUID        // Публичный идентификатор
	CompanyID      int64            // ID компании
	ProfessionalID int64            // ID профессионала
	ClientID       int64            // ID клиента
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания
	Status         string           // Статус записи
	Services       []Service        // Услуги, вошедшие в запись
	Notes          *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// Service денормализованная услуга в составе записи
type Service struct {
	ServiceID       int64
	Name            string
	DurationMinutes int
	Price           float64
}
