package create_review

import (
	"context"

	paymentModels "github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
)

type ReviewService interface {
	AddReview(ctx context.Context, req *paymentModels.CreateReviewRequest) (*paymentModels.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
