package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	clientsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/clients"
	"github.com/m04kA/SMC-AppointmentService/internal/service/reports/models"
)

// Service сервис отчетов
type Service struct {
	reportRepo ReportRepository
	clientRepo ClientRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	reportRepo ReportRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reportRepo: reportRepo,
		clientRepo: clientRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// DailySummary собирает сводку по записям и платежам за день
// Сводка и платежи читаются одной read-only транзакцией,
// чтобы цифры относились к одному снимку данных
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*models.DailySummaryResponse, error) {
	s.logger.Info("DailySummary: building report for date=%s", date.Format(domain.DateFormat))

	var summary *domain.DailySummary
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		summary, err = s.reportRepo.DailySummary(ctx, date)
		return err
	})
	if err != nil {
		s.logger.Error("DailySummary: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: DailySummary - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDailySummary(summary), nil
}

// ClientStatistics собирает статистику клиента за все время
func (s *Service) ClientStatistics(ctx context.Context, clientID int64) (*models.ClientStatisticsResponse, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("ClientStatistics: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ClientStatistics - repository error: %v", ErrInternal, err)
	}

	stats, err := s.reportRepo.ClientStatistics(ctx, clientID)
	if err != nil {
		s.logger.Error("ClientStatistics: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ClientStatistics - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientStatistics(stats), nil
}
