package get_daily_summary

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/daily-summary?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateValue := r.URL.Query().Get("date")
	if dateValue == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateValue)
	if err != nil {
		h.logger.Warn("GET /reports/daily-summary - Invalid date %q: %v", dateValue, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	summary, err := h.service.DailySummary(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reports/daily-summary - Failed to build summary: date=%s, error=%v", dateValue, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
