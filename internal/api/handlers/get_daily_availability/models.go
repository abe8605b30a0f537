package get_daily_availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getDailyAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_daily_availability"
)

// SlotResponse слот дневной сетки
type SlotResponse struct {
	StartTime string `json:"startTime"` // "09:15"
	State     string `json:"state"`     // free, booked, lunch, outside_window, day_off
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProfessionalID int64          `json:"professionalId"`
	Date           string         `json:"date"` // "2026-03-02"
	Available      bool           `json:"available"`
	Slots          []SlotResponse `json:"slots"`
	Labels         []string       `json:"labels"` // Подписи оси с шагом 30 минут
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDailyAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			State:     string(slot.State),
		})
	}

	labels := make([]string, 0, len(resp.Labels))
	for _, label := range resp.Labels {
		labels = append(labels, label.String())
	}

	return &AvailabilityResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		Available:      resp.Available,
		Slots:          slots,
		Labels:         labels,
	}
}
