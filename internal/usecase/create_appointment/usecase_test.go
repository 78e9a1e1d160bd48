package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	clientsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/clients"
	slotsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/slots"
)

type stubAppointmentRepo struct {
	created *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	created := *a
	created.ID = 100
	created.Status = domain.StatusScheduled
	s.created = &created
	return &created, nil
}

type stubSlotRepo struct {
	slot         *domain.TimeSlot
	incremented  int
	incrementErr error
}

func (s *stubSlotRepo) GetByID(_ context.Context, _ int64) (*domain.TimeSlot, error) {
	if s.slot == nil {
		return nil, slotsRepo.ErrSlotNotFound
	}
	return s.slot, nil
}

func (s *stubSlotRepo) IncrementBookings(_ context.Context, _ int64) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	s.incremented++
	return nil
}

type stubClientRepo struct {
	client *domain.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, _ int64) (*domain.Client, error) {
	if s.client == nil {
		return nil, clientsRepo.ErrClientNotFound
	}
	return s.client, nil
}

type stubCatalogRepo struct {
	service *domain.Service
}

func (s *stubCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.Service, error) {
	return s.service, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *stubAppointmentRepo
	slots        *stubSlotRepo
	clients      *stubClientRepo
	catalog      *stubCatalogRepo
	uc           *UseCase
}

func newFixture() *fixture {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	f := &fixture{
		appointments: &stubAppointmentRepo{},
		slots: &stubSlotRepo{
			slot: &domain.TimeSlot{
				ID:              7,
				EmployeeID:      3,
				ServiceID:       5,
				StartTime:       start,
				EndTime:         start.Add(time.Hour),
				Status:          domain.SlotAvailable,
				MaxCapacity:     1,
				CurrentBookings: 0,
			},
		},
		clients: &stubClientRepo{client: &domain.Client{ID: 1, IsActive: true}},
		catalog: &stubCatalogRepo{service: &domain.Service{ID: 5, Price: 1500, IsActive: true}},
	}
	f.uc = NewUseCase(f.appointments, f.slots, f.clients, f.catalog, stubTxManager{}, nopLogger{})
	return f
}

func TestCreateAppointmentSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 1, f.slots.incremented)

	// Данные слота и цена услуги денормализуются в запись
	created := f.appointments.created
	assert.Equal(t, int64(7), created.SlotID)
	assert.Equal(t, int64(5), created.ServiceID)
	assert.Equal(t, int64(3), created.EmployeeID)
	assert.Equal(t, 1500.0, created.Price)
	assert.Equal(t, f.slots.slot.StartTime.Format("15:04"), created.StartTime.String())
	assert.Equal(t, 0, created.AppointmentDate.Hour())
}

func TestCreateAppointmentWithPrepayment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7, Prepayment: 500})
	require.NoError(t, err)

	assert.Equal(t, 500.0, f.appointments.created.Prepayment)
	assert.Equal(t, 500.0, resp.Prepayment)
}

func TestCreateAppointmentSlotNotFound(t *testing.T) {
	f := newFixture()
	f.slots.slot = nil

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateAppointmentSlotFull(t *testing.T) {
	f := newFixture()
	f.slots.slot.CurrentBookings = f.slots.slot.MaxCapacity

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 0, f.slots.incremented)
}

func TestCreateAppointmentBlockedSlot(t *testing.T) {
	f := newFixture()
	f.slots.slot.Status = domain.SlotBlocked

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateAppointmentSlotInPast(t *testing.T) {
	f := newFixture()
	f.slots.slot.StartTime = time.Now().Add(-time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestCreateAppointmentClientNotFound(t *testing.T) {
	f := newFixture()
	f.clients.client = nil

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateAppointmentDeactivatedClient(t *testing.T) {
	f := newFixture()
	f.clients.client.IsActive = false

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateAppointmentInactiveService(t *testing.T) {
	f := newFixture()
	f.catalog.service.IsActive = false

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateAppointmentLosesCapacityRace(t *testing.T) {
	f := newFixture()
	// Слот выглядел свободным при чтении, но охраняемый UPDATE не прошел
	f.slots.incrementErr = slotsRepo.ErrSlotNotAvailable

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 0, SlotID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{ClientID: 1, SlotID: 7, Prepayment: -100})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
