package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetDetailsByID(ctx context.Context, id int64) (*domain.AppointmentDetails, error)
	ListByClient(ctx context.Context, clientID int64, upcomingOnly bool, now time.Time) ([]*domain.AppointmentDetails, error)
	ListDaily(ctx context.Context, filter domain.DailyAppointmentsFilter) ([]*domain.AppointmentDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// TimeProvider интерфейс источника текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
