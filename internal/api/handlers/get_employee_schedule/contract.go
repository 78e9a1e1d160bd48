package get_employee_schedule

import (
	"context"
	"time"

	catalogModels "github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type CatalogService interface {
	GetEmployeeSchedule(ctx context.Context, employeeID int64, date *time.Time) (*catalogModels.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
