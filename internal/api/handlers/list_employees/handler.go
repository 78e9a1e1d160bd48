package list_employees

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var position *string
	if value := r.URL.Query().Get("position"); value != "" {
		position = &value
	}
	includeInactive := r.URL.Query().Get("all") == "true"

	employees, err := h.service.ListEmployees(r.Context(), position, includeInactive)
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employees)
}
