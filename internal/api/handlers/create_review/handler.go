package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/payments"
	paymentModels "github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
)

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgAppointmentNotFound     = "запись не найдена"
	msgAppointmentNotCompleted = "отзыв можно оставить только по завершенной записи"
	msgReviewExists            = "отзыв по этой записи уже оставлен"
	msgForbidden               = "доступ запрещен"
	msgInvalidRating           = "рейтинг должен быть от 1 до 5"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/review - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req paymentModels.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AppointmentID = appointmentID

	review, err := h.service.AddReview(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/review - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, payments.ErrAppointmentNotCompleted):
			h.logger.Warn("POST /appointments/{id}/review - Appointment not completed: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAppointmentNotCompleted)

		case errors.Is(err, payments.ErrReviewExists):
			h.logger.Warn("POST /appointments/{id}/review - Review exists: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgReviewExists)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/review - Access denied: appointment_id=%d, client_id=%d",
				appointmentID, req.ClientID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrInvalidRating):
			h.logger.Warn("POST /appointments/{id}/review - Invalid rating %d: appointment_id=%d", req.Rating, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /appointments/{id}/review - Failed to add review: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/review - Review created: review_id=%d, appointment_id=%d",
		review.ID, appointmentID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
