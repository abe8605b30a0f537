package update_professional_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgInvalidSchedule       = "некорректный недельный шаблон"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Заменяем шаблон (сервис сам проверит права доступа и валидность)
	serviceReq := &models.UpsertWeekRequest{
		UserID: userID,
		Days:   req.Days,
	}

	result, err := h.service.UpsertWeek(r.Context(), professionalID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /professionals/{id}/schedule - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrInvalidSchedule), errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/schedule - Invalid schedule: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /professionals/{id}/schedule - Failed to update schedule: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/schedule - Schedule updated successfully: professional_id=%d, days=%d",
		professionalID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
