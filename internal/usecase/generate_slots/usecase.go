package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// UseCase use case для генерации слотов расписания
type UseCase struct {
	slotRepo    SlotRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case генерации слотов
// Длительность слота равна длительности услуги. Шаг между началами
// слотов задается intervalMinutes; при пересекающихся слотах каждый
// из них бронируется независимо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: employee=%d, service=%d, range=%s..%s",
		req.EmployeeID, req.ServiceID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем сотрудника
	employee, err := uc.catalogRepo.GetEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GenerateSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if !employee.IsActive {
		uc.logger.Warn("GenerateSlots: employee id=%d is inactive", req.EmployeeID)
		return nil, ErrEmployeeNotFound
	}

	// 3. Проверяем услугу - ее длительность задает размер слота
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GenerateSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GenerateSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if err := validateServiceDuration(service.Duration); err != nil {
		return nil, err
	}

	// 4. Дефолты
	interval := req.IntervalMinutes
	if interval == 0 {
		interval = domain.DefaultIntervalMinutes
	}
	maxCapacity := req.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = domain.DefaultMaxCapacity
	}

	// Валидатор гарантирует корректный формат
	workStartMin, _ := req.WorkStart.Minutes()
	workEndMin, _ := req.WorkEnd.Minutes()

	// 5. Генерируем слоты
	slots := buildSlots(
		req.EmployeeID, req.ServiceID,
		req.StartDate, req.EndDate,
		workStartMin, workEndMin,
		service.Duration, interval,
		maxCapacity,
		req.Notes,
	)

	if len(slots) == 0 {
		uc.logger.Info("GenerateSlots: no slots fit the working hours, nothing to create")
		return &Response{SlotIDs: []int64{}}, nil
	}

	// 6. Сохраняем пакет одной транзакцией - либо весь диапазон, либо ничего
	var ids []int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		ids, err = uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to create batch: %v", err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: created %d slots for employee=%d service=%d",
		len(ids), req.EmployeeID, req.ServiceID)

	return &Response{
		SlotIDs: ids,
		Created: len(ids),
	}, nil
}
