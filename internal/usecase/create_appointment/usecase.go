package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	clientsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/clients"
	slotsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для создания записи клиента на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка вместимости и запись идут в сериализуемой транзакции:
// слот читается с блокировкой, счетчик бронирований обновляется
// охраняемым UPDATE, так что два клиента не займут последнее место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, slot=%d", req.ClientID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем клиента
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.IsActive {
		uc.logger.Warn("CreateAppointment: client id=%d is deactivated", req.ClientID)
		return nil, ErrClientNotFound
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Читаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotsRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateAppointment: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Проверяем, что слот еще не начался
		if !slot.StartTime.After(now) {
			uc.logger.Warn("CreateAppointment: slot id=%d starts at %s, already in the past",
				req.SlotID, slot.StartTime.Format(domain.DateTimeFormat))
			return ErrSlotInPast
		}

		// 3.3. Проверяем доступность слота
		if !slot.IsBookable() {
			uc.logger.Warn("CreateAppointment: slot id=%d not bookable, status=%s, %d/%d taken",
				req.SlotID, slot.Status, slot.CurrentBookings, slot.MaxCapacity)
			return ErrSlotNotAvailable
		}

		// 3.4. Цена фиксируется на момент записи
		service, err := uc.catalogRepo.GetServiceByID(txCtx, slot.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", slot.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			return ErrServiceNotFound
		}

		// 3.5. Создаем запись с денормализацией данных слота
		appointment := &domain.Appointment{
			ClientID:        req.ClientID,
			SlotID:          slot.ID,
			ServiceID:       slot.ServiceID,
			EmployeeID:      slot.EmployeeID,
			AppointmentDate: truncateToDate(slot.StartTime),
			StartTime:       types.NewTimeString(slot.StartTime),
			EndTime:         types.NewTimeString(slot.EndTime),
			Price:           service.Price,
			Prepayment:      req.Prepayment,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 3.6. Занимаем место в слоте
		// Охраняемый UPDATE не пройдет, если слот заняли между чтением и записью
		if err := uc.slotRepo.IncrementBookings(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotsRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to increment bookings for slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to increment bookings: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		SlotID:          result.SlotID,
		ServiceID:       result.ServiceID,
		EmployeeID:      result.EmployeeID,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Status:          string(result.Status),
		Price:           result.Price,
		Prepayment:      result.Prepayment,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// truncateToDate отбрасывает время, оставляя календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
