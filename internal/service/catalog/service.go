package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис справочных данных: услуги, категории, сотрудники, расписание
type Service struct {
	catalogRepo CatalogRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// ListServices возвращает услуги, опционально по категории
// По умолчанию только активные; includeInactive показывает и отключенные
func (s *Service) ListServices(ctx context.Context, category *string, includeInactive bool) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx, domain.ServicesFilter{
		Category:   category,
		ActiveOnly: !includeInactive,
	})
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// ListCategories возвращает категории активных услуг
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return &models.CategoryListResponse{Categories: categories}, nil
}

// ListEmployees возвращает сотрудников, опционально по должности
// По умолчанию только активные; includeInactive показывает и уволенных
func (s *Service) ListEmployees(ctx context.Context, position *string, includeInactive bool) (*models.EmployeeListResponse, error) {
	employees, err := s.catalogRepo.ListEmployees(ctx, domain.EmployeesFilter{
		Position:   position,
		ActiveOnly: !includeInactive,
	})
	if err != nil {
		s.logger.Error("ListEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// GetEmployeeSchedule возвращает слоты сотрудника, опционально на дату
func (s *Service) GetEmployeeSchedule(ctx context.Context, employeeID int64, date *time.Time) (*models.SlotListResponse, error) {
	if _, err := s.catalogRepo.GetEmployeeByID(ctx, employeeID); err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetEmployeeSchedule: repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeSchedule - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByEmployee(ctx, employeeID, date)
	if err != nil {
		s.logger.Error("GetEmployeeSchedule: slots repository error for employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotDetailsList(slots), nil
}

// GetAvailableSlots возвращает доступные слоты услуги на дату
// Заполненные и заблокированные слоты не показываются
func (s *Service) GetAvailableSlots(ctx context.Context, serviceID int64, date time.Time, employeeID *int64) (*models.SlotListResponse, error) {
	service, err := s.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetAvailableSlots: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	if !service.IsActive {
		return nil, ErrServiceNotFound
	}

	slots, err := s.slotRepo.ListAvailable(ctx, serviceID, date, employeeID)
	if err != nil {
		s.logger.Error("GetAvailableSlots: slots repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAvailableSlots: found %d slots for service id=%d date=%s", len(slots), serviceID, date.Format(domain.DateFormat))
	return models.FromDomainSlotDetailsList(slots), nil
}
