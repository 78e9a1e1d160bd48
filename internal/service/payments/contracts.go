package payments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей и отзывов
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.Payment, error)
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	AddPrepayment(ctx context.Context, id int64, amount float64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
