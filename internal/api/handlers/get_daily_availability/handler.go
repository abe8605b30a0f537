package get_daily_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getDailyAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_daily_availability"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate           = "отсутствует параметр date"
	msgProfessionalNotFound  = "профессионал не найден"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability?date=YYYY-MM-DD&companyId=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем дату из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Опциональный companyId сужает выдачу до профессионалов компании
	var companyID int64
	if companyIDStr := r.URL.Query().Get("companyId"); companyIDStr != "" {
		companyID, err = strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil || companyID <= 0 {
			h.logger.Warn("GET /professionals/{id}/availability - Invalid company ID %q", companyIDStr)
			handlers.RespondBadRequest(w, msgInvalidCompanyID)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getDailyAvailability.Request{
		ProfessionalID: professionalID,
		CompanyID:      companyID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDailyAvailability.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getDailyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to get availability: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/availability - Availability retrieved: professional_id=%d, date=%s, slots=%d",
		professionalID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
