package sweep_reminders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	sendReminders "github.com/m04kA/SMC-AppointmentService/internal/usecase/send_reminders"
)

const (
	msgInvalidHoursBefore = "некорректное значение hoursBefore"
)

type Handler struct {
	useCase            SendRemindersUseCase
	defaultHoursBefore int
	logger             Logger
}

func NewHandler(useCase SendRemindersUseCase, defaultHoursBefore int, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		defaultHoursBefore: defaultHoursBefore,
		logger:             logger,
	}
}

// Handle POST /api/v1/reminders/sweep?hoursBefore=N
// Ручной запуск прохода по напоминаниям; обычно его гоняет тикер
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hoursBefore := h.defaultHoursBefore
	if value := r.URL.Query().Get("hoursBefore"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			handlers.RespondBadRequest(w, msgInvalidHoursBefore)
			return
		}
		hoursBefore = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &sendReminders.Request{HoursBefore: hoursBefore})
	if err != nil {
		switch {
		case errors.Is(err, sendReminders.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidHoursBefore)

		default:
			h.logger.Error("POST /reminders/sweep - Sweep failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reminders/sweep - Sweep finished: processed=%d sent=%d failed=%d",
		result.Processed, result.Sent, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
