package update_professional_schedule

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Days []models.DaySchedule `json:"days"`
}
