package list_services

import (
	"context"

	catalogModels "github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, category *string, includeInactive bool) (*catalogModels.ServiceListResponse, error)
	ListCategories(ctx context.Context) (*catalogModels.CategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
