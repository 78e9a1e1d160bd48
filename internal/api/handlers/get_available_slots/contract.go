package get_available_slots

import (
	"context"
	"time"

	catalogModels "github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type CatalogService interface {
	GetAvailableSlots(ctx context.Context, serviceID int64, date time.Time, employeeID *int64) (*catalogModels.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
