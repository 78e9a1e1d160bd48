package create_payment

import (
	"context"

	paymentModels "github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req *paymentModels.CreatePaymentRequest) (*paymentModels.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
