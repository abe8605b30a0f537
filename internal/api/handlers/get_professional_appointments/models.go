package get_professional_appointments

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// parseFilter собирает запрос к сервису из query параметров.
// Поддерживаются startDate, endDate (YYYY-MM-DD), status и includeCancelled.
func parseFilter(query url.Values, userID, professionalID int64) (*models.GetProfessionalAppointmentsRequest, error) {
	req := &models.GetProfessionalAppointmentsRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	return req, nil
}
