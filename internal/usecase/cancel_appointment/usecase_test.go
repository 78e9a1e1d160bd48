package cancel_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
)

type stubAppointmentRepo struct {
	appointment *domain.Appointment
	cancelled   int
	lastReason  *string
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.appointment == nil {
		return nil, appointmentsRepo.ErrAppointmentNotFound
	}
	return s.appointment, nil
}

func (s *stubAppointmentRepo) Cancel(_ context.Context, _ int64, reason *string) error {
	s.cancelled++
	s.lastReason = reason
	return nil
}

type stubSlotRepo struct {
	decremented int
}

func (s *stubSlotRepo) DecrementBookings(_ context.Context, _ int64) error {
	s.decremented++
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.AppointmentStatus) (*UseCase, *stubAppointmentRepo, *stubSlotRepo) {
	appointments := &stubAppointmentRepo{
		appointment: &domain.Appointment{ID: 42, SlotID: 7, Status: status},
	}
	slots := &stubSlotRepo{}
	uc := NewUseCase(appointments, slots, stubTxManager{}, nopLogger{})
	return uc, appointments, slots
}

func TestCancelAppointmentReleasesSlot(t *testing.T) {
	uc, appointments, slots := newFixture(domain.StatusScheduled)
	reason := "клиент попросил перенести"

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, Reason: &reason})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.False(t, resp.AlreadyCancelled)
	assert.Equal(t, 1, appointments.cancelled)
	assert.Equal(t, 1, slots.decremented)
	require.NotNil(t, appointments.lastReason)
	assert.Equal(t, reason, *appointments.lastReason)
}

func TestCancelAppointmentConfirmed(t *testing.T) {
	uc, _, slots := newFixture(domain.StatusConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})
	require.NoError(t, err)

	assert.False(t, resp.AlreadyCancelled)
	assert.Equal(t, 1, slots.decremented)
}

func TestCancelAppointmentIdempotent(t *testing.T) {
	uc, appointments, slots := newFixture(domain.StatusCancelled)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})
	require.NoError(t, err)

	// Повторная отмена - успех без побочных эффектов
	assert.True(t, resp.AlreadyCancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, 0, appointments.cancelled)
	assert.Equal(t, 0, slots.decremented)
}

func TestCancelAppointmentTerminalStatuses(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			uc, _, slots := newFixture(status)

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Equal(t, 0, slots.decremented)
		})
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc, appointments, _ := newFixture(domain.StatusScheduled)
	appointments.appointment = nil

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelAppointmentValidation(t *testing.T) {
	uc, _, _ := newFixture(domain.StatusScheduled)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	longReason := make([]byte, domain.MaxCancelReasonLength+1)
	for i := range longReason {
		longReason[i] = 'x'
	}
	reason := string(longReason)
	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 42, Reason: &reason})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
