package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type stubAppointmentRepo struct {
	due     []*domain.AppointmentDetails
	marked  []int64
	markErr map[int64]error
}

func (s *stubAppointmentRepo) ListDueReminders(_ context.Context, _ time.Time) ([]*domain.AppointmentDetails, error) {
	return s.due, nil
}

func (s *stubAppointmentRepo) MarkReminderSent(_ context.Context, id int64) error {
	if err := s.markErr[id]; err != nil {
		return err
	}
	s.marked = append(s.marked, id)
	return nil
}

type stubNotifier struct {
	sent    []string
	failFor map[string]error
}

func (s *stubNotifier) Send(_ context.Context, phone, _ string) error {
	if err := s.failFor[phone]; err != nil {
		return err
	}
	s.sent = append(s.sent, phone)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dueAppointment(id int64, phone string) *domain.AppointmentDetails {
	details := &domain.AppointmentDetails{
		ClientFirstName:   "Анна",
		ClientPhone:       phone,
		EmployeeFirstName: "Мария",
		EmployeeLastName:  "Иванова",
		ServiceName:       "Маникюр",
	}
	details.ID = id
	details.AppointmentDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	details.StartTime = "14:00"
	return details
}

func TestSendRemindersMarksOnlyDelivered(t *testing.T) {
	repo := &stubAppointmentRepo{
		due: []*domain.AppointmentDetails{
			dueAppointment(1, "+79990000001"),
			dueAppointment(2, "+79990000002"),
			dueAppointment(3, "+79990000003"),
		},
	}
	notifier := &stubNotifier{
		failFor: map[string]error{"+79990000002": errors.New("gateway timeout")},
	}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HoursBefore: 24})
	require.NoError(t, err)

	// Сбой одной доставки не прерывает проход
	assert.Equal(t, 3, resp.Processed)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, []int64{1, 3}, repo.marked)
}

func TestSendRemindersMarkFailureCountsAsFailed(t *testing.T) {
	repo := &stubAppointmentRepo{
		due:     []*domain.AppointmentDetails{dueAppointment(1, "+79990000001")},
		markErr: map[int64]error{1: errors.New("db down")},
	}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HoursBefore: 24})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, 0, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	// Доставка ушла, но запись осталась непомеченной
	assert.Equal(t, []string{"+79990000001"}, notifier.sent)
	assert.Empty(t, repo.marked)
}

func TestSendRemindersEmptySweep(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubNotifier{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HoursBefore: 24})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Processed)
	assert.Equal(t, 0, resp.Sent)
	assert.Equal(t, 0, resp.Failed)
}

func TestSendRemindersInvalidHours(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HoursBefore: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HoursBefore: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildMessage(t *testing.T) {
	message := buildMessage(dueAppointment(1, "+79990000001"))

	assert.Contains(t, message, "Анна")
	assert.Contains(t, message, "Маникюр")
	assert.Contains(t, message, "2026-09-01")
	assert.Contains(t, message, "14:00")
	assert.Contains(t, message, "Мария Иванова")
}
