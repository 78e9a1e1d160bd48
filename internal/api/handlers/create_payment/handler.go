package create_payment

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
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgInvalidPaymentMethod = "неизвестный способ оплаты"
	msgInvalidAmount        = "сумма платежа должна быть положительной"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/payments - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req paymentModels.CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AppointmentID = appointmentID

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/payments - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, payments.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /appointments/{id}/payments - Invalid method %q: appointment_id=%d", req.Method, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, payments.ErrInvalidAmount):
			h.logger.Warn("POST /appointments/{id}/payments - Invalid amount %.2f: appointment_id=%d", req.Amount, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /appointments/{id}/payments - Failed to record payment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payments - Payment recorded: payment_id=%d, appointment_id=%d",
		payment.ID, appointmentID)
	handlers.RespondJSON(w, http.StatusCreated, payment)
}
