package list_clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
	clientModels "github.com/m04kA/SMC-AppointmentService/internal/service/clients/models"
)

const (
	msgInvalidLimit   = "некорректное значение limit"
	msgInvalidOffset  = "некорректное значение offset"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients?search=&phone=&limit=&offset=
// Параметр phone возвращает единственного клиента с точным совпадением
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Точный поиск по телефону - отдельная ветка
	if phone := query.Get("phone"); phone != "" {
		client, err := h.service.GetByPhone(r.Context(), phone)
		if err != nil {
			switch {
			case errors.Is(err, clients.ErrClientNotFound):
				handlers.RespondNotFound(w, msgClientNotFound)
			default:
				h.logger.Error("GET /clients - Failed to get client by phone: %v", err)
				handlers.RespondInternalError(w)
			}
			return
		}
		handlers.RespondJSON(w, http.StatusOK, client)
		return
	}

	req := &clientModels.ListClientsRequest{}

	if value := query.Get("search"); value != "" {
		req.Search = &value
	}
	if value := query.Get("limit"); value != "" {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}
	if value := query.Get("offset"); value != "" {
		offset, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		req.Offset = offset
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
