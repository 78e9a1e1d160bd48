package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
	paymentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/payments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type stubPaymentRepo struct {
	payment      *domain.Payment
	review       *domain.Review
	reviewExists bool
}

func (s *stubPaymentRepo) CreatePayment(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	created := *p
	created.ID = 500
	s.payment = &created
	return &created, nil
}

func (s *stubPaymentRepo) ListByAppointment(_ context.Context, _ int64) ([]*domain.Payment, error) {
	if s.payment == nil {
		return nil, nil
	}
	return []*domain.Payment{s.payment}, nil
}

func (s *stubPaymentRepo) CreateReview(_ context.Context, r *domain.Review) (*domain.Review, error) {
	if s.reviewExists {
		return nil, paymentsRepo.ErrDuplicateReview
	}
	created := *r
	created.ID = 900
	s.review = &created
	return &created, nil
}

type stubAppointmentRepo struct {
	appointment *domain.Appointment
	prepayments []float64
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if s.appointment == nil {
		return nil, appointmentsRepo.ErrAppointmentNotFound
	}
	return s.appointment, nil
}

func (s *stubAppointmentRepo) AddPrepayment(_ context.Context, _ int64, amount float64) error {
	s.prepayments = append(s.prepayments, amount)
	return nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (stubTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.AppointmentStatus) (*Service, *stubPaymentRepo, *stubAppointmentRepo) {
	payments := &stubPaymentRepo{}
	appointments := &stubAppointmentRepo{
		appointment: &domain.Appointment{
			ID:         20,
			ClientID:   3,
			EmployeeID: 4,
			ServiceID:  5,
			Status:     status,
		},
	}
	svc := NewService(payments, appointments, stubTxManager{}, nopLogger{})
	return svc, payments, appointments
}

func TestRecordPaymentAddsPrepayment(t *testing.T) {
	svc, payments, appointments := newFixture(domain.StatusConfirmed)

	resp, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        500,
		Method:        "card",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, int64(3), resp.ClientID)
	assert.Equal(t, []float64{500}, appointments.prepayments)
	assert.Equal(t, domain.PaymentCompleted, payments.payment.Status)
}

func TestRecordPaymentRefundSkipsPrepayment(t *testing.T) {
	svc, payments, appointments := newFixture(domain.StatusCancelled)

	resp, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        300,
		Method:        "refund",
	})
	require.NoError(t, err)

	// Возврат записывается отдельным платежом и не трогает предоплату
	assert.Equal(t, "refunded", resp.Status)
	assert.Empty(t, appointments.prepayments)
	assert.Equal(t, domain.PaymentRefunded, payments.payment.Status)
}

func TestRecordPaymentInvalidAmount(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusConfirmed)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        0,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        -10,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPaymentUnknownMethod(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusConfirmed)

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        100,
		Method:        "crypto",
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestRecordPaymentAppointmentNotFound(t *testing.T) {
	svc, _, appointments := newFixture(domain.StatusConfirmed)
	appointments.appointment = nil

	_, err := svc.RecordPayment(context.Background(), &models.CreatePaymentRequest{
		AppointmentID: 20,
		Amount:        100,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAddReviewSuccess(t *testing.T) {
	svc, payments, _ := newFixture(domain.StatusCompleted)

	resp, err := svc.AddReview(context.Background(), &models.CreateReviewRequest{
		AppointmentID: 20,
		ClientID:      3,
		Rating:        5,
		Comment:       ptr.Ptr("отличный мастер"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(900), resp.ID)
	assert.Equal(t, 5, resp.Rating)
	// Отзыв наследует сотрудника и услугу из записи
	assert.Equal(t, int64(4), payments.review.EmployeeID)
	assert.Equal(t, int64(5), payments.review.ServiceID)
}

func TestAddReviewRequiresCompletedAppointment(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusScheduled,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, _ := newFixture(status)

			_, err := svc.AddReview(context.Background(), &models.CreateReviewRequest{
				AppointmentID: 20,
				ClientID:      3,
				Rating:        4,
			})
			assert.ErrorIs(t, err, ErrAppointmentNotCompleted)
		})
	}
}

func TestAddReviewWrongClient(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusCompleted)

	_, err := svc.AddReview(context.Background(), &models.CreateReviewRequest{
		AppointmentID: 20,
		ClientID:      99,
		Rating:        4,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAddReviewWriteOnce(t *testing.T) {
	svc, payments, _ := newFixture(domain.StatusCompleted)
	payments.reviewExists = true

	_, err := svc.AddReview(context.Background(), &models.CreateReviewRequest{
		AppointmentID: 20,
		ClientID:      3,
		Rating:        4,
	})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestAddReviewRatingBounds(t *testing.T) {
	svc, _, _ := newFixture(domain.StatusCompleted)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.AddReview(context.Background(), &models.CreateReviewRequest{
			AppointmentID: 20,
			ClientID:      3,
			Rating:        rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}
