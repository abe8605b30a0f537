package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceIDs     []int64 `json:"serviceIds"`
	Date           string  `json:"date"`      // "2026-03-02"
	StartTime      string  `json:"startTime"` // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// ServiceResponse услуга в составе записи
type ServiceResponse struct {
	ServiceID       int64   `json:"serviceId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64             `json:"id"`
	UID            string            `json:"uid"`
	CompanyID      int64             `json:"companyId"`
	ProfessionalID int64             `json:"professionalId"`
	ClientID       int64             `json:"clientId"`
	Date           string            `json:"date"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	Status         string            `json:"status"`
	Services       []ServiceResponse `json:"services"`
	Notes          *string           `json:"notes,omitempty"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		ProfessionalID: r.ProfessionalID,
		ServiceIDs:     r.ServiceIDs,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	services := make([]ServiceResponse, 0, len(resp.Services))
	for _, svc := range resp.Services {
		services = append(services, ServiceResponse{
			ServiceID:       svc.ServiceID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	return &AppointmentResponse{
		ID:             resp.ID,
		UID:            resp.UID.String(),
		CompanyID:      resp.CompanyID,
		ProfessionalID: resp.ProfessionalID,
		ClientID:       resp.ClientID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		Services:       services,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
