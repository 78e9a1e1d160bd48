package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type stubRepo struct {
	appointment  *domain.Appointment
	updates      []domain.AppointmentStatus
	listedClient int64
	upcomingOnly bool
	listedNow    time.Time
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.appointment == nil {
		return nil, appointmentsRepo.ErrAppointmentNotFound
	}
	return s.appointment, nil
}

func (s *stubRepo) GetDetailsByID(_ context.Context, _ int64) (*domain.AppointmentDetails, error) {
	if s.appointment == nil {
		return nil, appointmentsRepo.ErrAppointmentNotFound
	}
	return &domain.AppointmentDetails{Appointment: *s.appointment, ServiceName: "Стрижка"}, nil
}

func (s *stubRepo) ListByClient(_ context.Context, clientID int64, upcomingOnly bool, now time.Time) ([]*domain.AppointmentDetails, error) {
	s.listedClient = clientID
	s.upcomingOnly = upcomingOnly
	s.listedNow = now
	return nil, nil
}

func (s *stubRepo) ListDaily(_ context.Context, _ domain.DailyAppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	return nil, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	s.updates = append(s.updates, status)
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.AppointmentStatus) (*Service, *stubRepo) {
	repo := &stubRepo{appointment: &domain.Appointment{ID: 10, Status: status}}
	svc := NewService(repo, fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}, nopLogger{})
	return svc, repo
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	svc, repo := newFixture(domain.StatusScheduled)

	resp, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []domain.AppointmentStatus{domain.StatusConfirmed}, repo.updates)
}

func TestUpdateStatusFullLifecycle(t *testing.T) {
	steps := []struct {
		from domain.AppointmentStatus
		to   string
	}{
		{domain.StatusScheduled, "confirmed"},
		{domain.StatusConfirmed, "in_progress"},
		{domain.StatusInProgress, "completed"},
	}

	for _, step := range steps {
		svc, _ := newFixture(step.from)
		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: step.to})
		assert.NoError(t, err, "%s -> %s", step.from, step.to)
	}
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	svc, repo := newFixture(domain.StatusScheduled)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatusTerminalStatus(t *testing.T) {
	svc, repo := newFixture(domain.StatusCompleted)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, _ := newFixture(domain.StatusScheduled)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusCancelledGoesThroughCancelOperation(t *testing.T) {
	svc, repo := newFixture(domain.StatusScheduled)

	// Отмена через смену статуса запрещена - она не освободит слот
	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, repo := newFixture(domain.StatusScheduled)
	repo.appointment = nil

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListByClientPassesCurrentTime(t *testing.T) {
	svc, repo := newFixture(domain.StatusScheduled)

	_, err := svc.ListByClient(context.Background(), 55, true)
	require.NoError(t, err)

	assert.Equal(t, int64(55), repo.listedClient)
	assert.True(t, repo.upcomingOnly)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), repo.listedNow)
}

func TestGetByIDIncludesDetails(t *testing.T) {
	svc, _ := newFixture(domain.StatusConfirmed)

	resp, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Стрижка", resp.ServiceName)
}
