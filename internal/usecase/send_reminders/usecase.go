package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case прохода по напоминаниям
// Запускается по тикеру и вручную через API
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет проход по напоминаниям
// Запись помечается reminder_sent только после подтвержденной доставки:
// при сбое шлюза запись остается в выборке и будет подхвачена
// следующим проходом. Сбой одной доставки не прерывает проход
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.HoursBefore <= 0 {
		return nil, fmt.Errorf("%w: hoursBefore must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	cutoff := now.Add(time.Duration(req.HoursBefore) * time.Hour)

	uc.logger.Info("SendReminders: sweeping appointments starting before %s",
		cutoff.Format(domain.DateTimeFormat))

	due, err := uc.appointmentRepo.ListDueReminders(ctx, cutoff)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list due reminders: %v", err)
		return nil, fmt.Errorf("%w: failed to list due reminders: %v", ErrInternal, err)
	}

	resp := &Response{Processed: len(due)}

	for _, appointment := range due {
		message := buildMessage(appointment)

		if err := uc.notifier.Send(ctx, appointment.ClientPhone, message); err != nil {
			uc.logger.Warn("SendReminders: delivery failed for appointment id=%d: %v", appointment.ID, err)
			resp.Failed++
			continue
		}

		if err := uc.appointmentRepo.MarkReminderSent(ctx, appointment.ID); err != nil {
			// Доставлено, но не помечено - следующий проход отправит повторно,
			// это осознанный выбор в пользу "не потерять напоминание"
			uc.logger.Error("SendReminders: failed to mark reminder for appointment id=%d: %v", appointment.ID, err)
			resp.Failed++
			continue
		}

		resp.Sent++
	}

	uc.logger.Info("SendReminders: processed=%d sent=%d failed=%d", resp.Processed, resp.Sent, resp.Failed)
	return resp, nil
}

// buildMessage собирает текст напоминания для клиента
func buildMessage(a *domain.AppointmentDetails) string {
	return fmt.Sprintf(
		"Здравствуйте, %s! Напоминаем о записи на услугу «%s» %s в %s. Мастер: %s %s.",
		a.ClientFirstName,
		a.ServiceName,
		a.AppointmentDate.Format(domain.DateFormat),
		a.StartTime.String(),
		a.EmployeeFirstName,
		a.EmployeeLastName,
	)
}
