package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями: чтение и смена статусов
// Создание и отмена записей идут через usecase слой - там транзакции со слотами
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись с данными клиента, сотрудника и услуги
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	details, err := s.appointmentRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetails(details), nil
}

// ListByClient возвращает записи клиента, новые первыми
// При upcomingOnly - только активные записи с сегодняшнего дня
func (s *Service) ListByClient(ctx context.Context, clientID int64, upcomingOnly bool) (*models.AppointmentListResponse, error) {
	details, err := s.appointmentRepo.ListByClient(ctx, clientID, upcomingOnly, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListByClient: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetailsList(details), nil
}

// ListDaily возвращает записи на день, отсортированные по времени начала
func (s *Service) ListDaily(ctx context.Context, filter domain.DailyAppointmentsFilter) (*models.AppointmentListResponse, error) {
	details, err := s.appointmentRepo.ListDaily(ctx, filter)
	if err != nil {
		s.logger.Error("ListDaily: repository error for date=%s: %v", filter.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListDaily - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDetailsList(details), nil
}

// UpdateStatus меняет статус записи с проверкой допустимости перехода
// Терминальные статусы (completed, cancelled, no_show) дальше не меняются
// Отмена идет через отдельный usecase - она освобождает место в слоте
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> status=%s", id, req.Status)

	newStatus, ok := models.ToDomainStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// Отмена и возврат места в слоте - зона ответственности usecase отмены
	if newStatus == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use the cancel operation to cancel an appointment", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(appointment.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d", appointment.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: update error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = newStatus
	s.logger.Info("UpdateStatus: appointment id=%d now %s", id, newStatus)
	return models.FromDomainAppointment(appointment), nil
}
