package list_employees

import (
	"context"

	catalogModels "github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type CatalogService interface {
	ListEmployees(ctx context.Context, position *string, includeInactive bool) (*catalogModels.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
