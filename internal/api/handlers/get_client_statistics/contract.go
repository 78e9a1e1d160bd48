package get_client_statistics

import (
	"context"

	reportModels "github.com/m04kA/SMC-AppointmentService/internal/service/reports/models"
)

type ReportService interface {
	ClientStatistics(ctx context.Context, clientID int64) (*reportModels.ClientStatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
