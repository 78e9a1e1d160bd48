package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

type stubSlotRepo struct {
	created []*domain.TimeSlot
}

func (s *stubSlotRepo) CreateBatch(_ context.Context, batch []*domain.TimeSlot) ([]int64, error) {
	s.created = batch
	ids := make([]int64, 0, len(batch))
	for i := range batch {
		ids = append(ids, int64(i+1))
	}
	return ids, nil
}

type stubCatalogRepo struct {
	employee *domain.Employee
	service  *domain.Service
}

func (s *stubCatalogRepo) GetEmployeeByID(_ context.Context, _ int64) (*domain.Employee, error) {
	if s.employee == nil {
		return nil, catalogRepo.ErrEmployeeNotFound
	}
	return s.employee, nil
}

func (s *stubCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.Service, error) {
	if s.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s.service, nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeCatalog(duration int) *stubCatalogRepo {
	return &stubCatalogRepo{
		employee: &domain.Employee{ID: 1, IsActive: true},
		service:  &domain.Service{ID: 2, Duration: duration, IsActive: true},
	}
}

func baseRequest() *Request {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &Request{
		EmployeeID: 1,
		ServiceID:  2,
		StartDate:  day,
		EndDate:    day,
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
	}
}

func TestGenerateSlotsFillsWorkingDay(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(60), stubTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// 09:00..18:00 с часовыми слотами: 09:00-10:00 ... 17:00-18:00
	assert.Equal(t, 9, resp.Created)
	require.Len(t, slotRepo.created, 9)

	first := slotRepo.created[0]
	assert.Equal(t, "09:00", first.StartTime.Format("15:04"))
	assert.Equal(t, "10:00", first.EndTime.Format("15:04"))
	assert.Equal(t, domain.DefaultMaxCapacity, first.MaxCapacity)

	last := slotRepo.created[8]
	assert.Equal(t, "17:00", last.StartTime.Format("15:04"))
	assert.Equal(t, "18:00", last.EndTime.Format("15:04"))
}

func TestGenerateSlotsDropsPartialSlotAtEndOfDay(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(90), stubTxManager{}, nopLogger{})

	req := baseRequest()
	req.WorkEnd = "12:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 09:00-10:30 и 10:00-11:30 помещаются, 11:00-12:30 выходит за рабочий день
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, "10:00", slotRepo.created[1].StartTime.Format("15:04"))
	assert.Equal(t, "11:30", slotRepo.created[1].EndTime.Format("15:04"))
}

func TestGenerateSlotsExactFit(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(60), stubTxManager{}, nopLogger{})

	req := baseRequest()
	req.WorkEnd = "10:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// start + duration == workEnd - слот входит
	assert.Equal(t, 1, resp.Created)
}

func TestGenerateSlotsMultipleDays(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(60), stubTxManager{}, nopLogger{})

	req := baseRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, 2)
	req.WorkEnd = "11:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 2 слота в день, 3 дня включительно
	assert.Equal(t, 6, resp.Created)
	assert.Equal(t, req.StartDate.Day(), slotRepo.created[0].StartTime.Day())
	assert.Equal(t, req.EndDate.Day(), slotRepo.created[5].StartTime.Day())
}

func TestGenerateSlotsCustomIntervalAndCapacity(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(60), stubTxManager{}, nopLogger{})

	req := baseRequest()
	req.WorkEnd = "11:00"
	req.IntervalMinutes = 30
	req.MaxCapacity = 5

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Пересекающиеся слоты: 09:00, 09:30, 10:00
	assert.Equal(t, 3, resp.Created)
	for _, slot := range slotRepo.created {
		assert.Equal(t, 5, slot.MaxCapacity)
	}
}

func TestGenerateSlotsNothingFits(t *testing.T) {
	slotRepo := &stubSlotRepo{}
	uc := NewUseCase(slotRepo, activeCatalog(120), stubTxManager{}, nopLogger{})

	req := baseRequest()
	req.WorkEnd = "10:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Created)
	assert.NotNil(t, resp.SlotIDs)
	assert.Nil(t, slotRepo.created)
}

func TestGenerateSlotsEmployeeNotFound(t *testing.T) {
	catalog := activeCatalog(60)
	catalog.employee = nil
	uc := NewUseCase(&stubSlotRepo{}, catalog, stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGenerateSlotsInactiveEmployee(t *testing.T) {
	catalog := activeCatalog(60)
	catalog.employee.IsActive = false
	uc := NewUseCase(&stubSlotRepo{}, catalog, stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGenerateSlotsInactiveService(t *testing.T) {
	catalog := activeCatalog(60)
	catalog.service.IsActive = false
	uc := NewUseCase(&stubSlotRepo{}, catalog, stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGenerateSlotsValidation(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{}, activeCatalog(60), stubTxManager{}, nopLogger{})

	cases := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero employee", func(r *Request) { r.EmployeeID = 0 }, ErrInvalidInput},
		{"end before start", func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, ErrInvalidDateRange},
		{"range too long", func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, domain.MaxSlotRangeDays) }, ErrInvalidDateRange},
		{"work start after end", func(r *Request) { r.WorkStart, r.WorkEnd = "18:00", "09:00" }, ErrInvalidWorkingHours},
		{"bad work start", func(r *Request) { r.WorkStart = "9am" }, ErrInvalidWorkingHours},
		{"interval too small", func(r *Request) { r.IntervalMinutes = domain.MinIntervalMinutes - 1 }, ErrInvalidInput},
		{"negative capacity", func(r *Request) { r.MaxCapacity = -1 }, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerateSlotsRejectsOutOfRangeDuration(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{}, activeCatalog(domain.MaxServiceDurationMinutes+1), stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
