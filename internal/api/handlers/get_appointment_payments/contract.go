package get_appointment_payments

import (
	"context"

	paymentModels "github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
)

type PaymentService interface {
	ListByAppointment(ctx context.Context, appointmentID int64) (*paymentModels.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
