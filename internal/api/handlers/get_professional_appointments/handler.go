package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidDateFilter     = "некорректный формат даты фильтра, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgInvalidFilter         = "некорректные параметры фильтра"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Собираем фильтр из query параметров
	serviceReq, err := parseFilter(r.URL.Query(), userID, professionalID)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}

	// Получаем записи профессионала (сервис сам проверит права доступа)
	result, err := h.service.GetProfessionalAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/appointments - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid filter: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Appointments retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
