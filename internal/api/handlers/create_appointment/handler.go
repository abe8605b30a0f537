package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgProfessionalNotFound  = "профессионал не найден"
	msgProfessionalInactive  = "профессионал не принимает записи"
	msgServiceNotFound       = "услуга не найдена"
	msgSlotNotAvailable      = "выбранный интервал недоступен"
	msgOutOfWindow           = "интервал выходит за рабочее окно профессионала"
	msgInvalidDuration       = "некорректный состав услуг"
	msgInvalidDate           = "некорректная дата записи"
	msgInvalidInput          = "некорректные входные данные"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: client_id=%d, professional_id=%d", clientID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrOutOfWindow):
			h.logger.Warn("POST /appointments - Out of working window: client_id=%d, professional_id=%d", clientID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgOutOfWindow)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalInactive):
			h.logger.Warn("POST /appointments - Professional inactive: professional_id=%d", req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgProfessionalInactive)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client_id=%d, services=%v", clientID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: client_id=%d, services=%v", clientID, req.ServiceIDs)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, professional_id=%d, error=%v",
				clientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
