package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusFree marks a blocker interval placed by the professional
	// (personal errand, walk-in, etc). It occupies slots like a regular
	// appointment but has no client behind it.
	StatusFree AppointmentStatus = "free"
)

// AppointmentService is a denormalized snapshot of a catalog service at
// booking time. Durations drive the appointment length; the catalog may
// change later without affecting history.
type AppointmentService struct {
	ServiceID       int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Appointment represents a booked interval of a professional's day
type Appointment struct {
	ID             int64
	UID            uuid.UUID // публичный идентификатор для внешних систем
	CompanyID      int64
	ProfessionalID int64
	ClientID       int64
	Date           time.Time // дата без времени
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         AppointmentStatus
	Services       []AppointmentService
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the appointment occupies slots.
// Cancelled appointments are kept for history but release their interval.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether a manual status transition is allowed.
// Cancellation goes through Cancel with a reason, not through this path.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCompleted
	case StatusConfirmed:
		return next == StatusCompleted
	default:
		return false
	}
}

// TotalDurationMinutes returns the summed duration of all services
func (a *Appointment) TotalDurationMinutes() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMinutes
	}
	return total
}

// ProfessionalAppointmentsFilter фильтр для выборки записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID   int64              // Обязательный параметр
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
