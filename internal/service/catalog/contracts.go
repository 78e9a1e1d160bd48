package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context, filter domain.ServicesFilter) ([]*domain.Service, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailable(ctx context.Context, serviceID int64, date time.Time, employeeID *int64) ([]*domain.AvailableSlotDetails, error)
	ListByEmployee(ctx context.Context, employeeID int64, date *time.Time) ([]*domain.AvailableSlotDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
