package get_daily_availability

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса дневной сетки слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	CompanyID      int64     // Опциональная проверка принадлежности компании (0 - не проверять)
	Date           time.Time // Дата без времени
}

// Response модель ответа с классифицированной сеткой на день
type Response struct {
	ProfessionalID int64              // ID профессионала
	Date           time.Time          // Дата, на которую строилась сетка
	Available      bool               // Есть ли в сетке хотя бы один свободный слот
	Slots          []Slot             // Слоты с шагом 15 минут
	Labels         []types.TimeString // Подписи сетки с шагом 30 минут
}

// Slot слот дневной сетки
type Slot struct {
	StartTime types.TimeString       // Время начала слота
	State     availability.SlotState // Состояние слота
}
