package get_daily_summary

import (
	"context"
	"time"

	reportModels "github.com/m04kA/SMC-AppointmentService/internal/service/reports/models"
)

type ReportService interface {
	DailySummary(ctx context.Context, date time.Time) (*reportModels.DailySummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
