package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
)

// UseCase use case для отмены записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены записи
// Отмена идемпотентна: повторная отмена уже отмененной записи
// возвращает успех и не трогает счетчик слота
// Завершенные записи и no-show отменить нельзя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: appointment id=%d", req.AppointmentID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancelReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Повторная отмена - не ошибка
		if appointment.Status == domain.StatusCancelled {
			uc.logger.Info("CancelAppointment: appointment id=%d already cancelled", req.AppointmentID)
			result = &Response{
				ID:               appointment.ID,
				Status:           string(domain.StatusCancelled),
				AlreadyCancelled: true,
			}
			return nil
		}

		if !appointment.CanBeCancelled() {
			uc.logger.Warn("CancelAppointment: appointment id=%d in status %s cannot be cancelled",
				req.AppointmentID, appointment.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotCancel, appointment.Status)
		}

		if err := uc.appointmentRepo.Cancel(txCtx, appointment.ID, req.Reason); err != nil {
			uc.logger.Error("CancelAppointment: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// Освобождаем место в слоте
		if err := uc.slotRepo.DecrementBookings(txCtx, appointment.SlotID); err != nil {
			uc.logger.Error("CancelAppointment: failed to decrement bookings for slot id=%d: %v",
				appointment.SlotID, err)
			return fmt.Errorf("%w: failed to decrement bookings: %v", ErrInternal, err)
		}

		result = &Response{
			ID:     appointment.ID,
			Status: string(domain.StatusCancelled),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCancelled {
		uc.logger.Info("CancelAppointment: appointment id=%d cancelled", req.AppointmentID)
	}
	return result, nil
}
