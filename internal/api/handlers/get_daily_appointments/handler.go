package get_daily_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
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

// Handle GET /api/v1/appointments?date=YYYY-MM-DD&employeeId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateValue := query.Get("date")
	if dateValue == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateValue)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", dateValue, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	filter := domain.DailyAppointmentsFilter{Date: date}

	if value := query.Get("employeeId"); value != "" {
		employeeID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid employee ID %q: %v", value, err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)
			return
		}
		filter.EmployeeID = &employeeID
	}

	appointments, err := h.service.ListDaily(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list daily appointments: date=%s, error=%v", dateValue, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointments)
}
