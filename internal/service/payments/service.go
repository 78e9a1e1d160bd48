package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointments"
	paymentsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/payments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/payments/models"
)

// Service сервис платежей и отзывов
type Service struct {
	paymentRepo     PaymentRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// RecordPayment записывает платеж по записи
// Платеж и обновление предоплаты идут одной транзакцией
// Возврат (method=refund) предоплату записи не увеличивает
func (s *Service) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("RecordPayment: appointment id=%d amount=%.2f method=%s", req.AppointmentID, req.Amount, req.Method)

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	method := domain.PaymentMethod(req.Method)
	if !domain.IsValidPaymentMethod(method) {
		s.logger.Warn("RecordPayment: unknown method=%s for appointment id=%d", req.Method, req.AppointmentID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, req.Method)
	}

	var payment *domain.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
		}

		status := domain.PaymentCompleted
		if method == domain.PaymentRefund {
			status = domain.PaymentRefunded
		}

		payment = &domain.Payment{
			AppointmentID: appointment.ID,
			ClientID:      appointment.ClientID,
			Amount:        req.Amount,
			Method:        method,
			Status:        status,
			TransactionID: req.TransactionID,
			Notes:         req.Notes,
		}

		payment, err = s.paymentRepo.CreatePayment(ctx, payment)
		if err != nil {
			return fmt.Errorf("%w: RecordPayment - create payment: %v", ErrInternal, err)
		}

		if method != domain.PaymentRefund {
			if err := s.appointmentRepo.AddPrepayment(ctx, appointment.ID, req.Amount); err != nil {
				return fmt.Errorf("%w: RecordPayment - update prepayment: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Error("RecordPayment: transaction failed for appointment id=%d: %v", req.AppointmentID, err)
		}
		return nil, err
	}

	s.logger.Info("RecordPayment: payment id=%d recorded for appointment id=%d", payment.ID, req.AppointmentID)
	return models.FromDomainPayment(payment), nil
}

// ListByAppointment возвращает платежи по записи
func (s *Service) ListByAppointment(ctx context.Context, appointmentID int64) (*models.PaymentListResponse, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("ListByAppointment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: ListByAppointment - repository error: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("ListByAppointment: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: ListByAppointment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// AddReview записывает отзыв по завершенной записи
// Отзыв пишется один раз: повторная попытка возвращает ErrReviewExists
func (s *Service) AddReview(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("AddReview: appointment id=%d client id=%d rating=%d", req.AppointmentID, req.ClientID, req.Rating)

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, ErrInvalidRating
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentsRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("AddReview: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: AddReview - repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != req.ClientID {
		s.logger.Warn("AddReview: client id=%d tried to review appointment id=%d of client id=%d",
			req.ClientID, req.AppointmentID, appointment.ClientID)
		return nil, ErrAccessDenied
	}

	if appointment.Status != domain.StatusCompleted {
		return nil, ErrAppointmentNotCompleted
	}

	review := &domain.Review{
		AppointmentID: appointment.ID,
		ClientID:      appointment.ClientID,
		EmployeeID:    appointment.EmployeeID,
		ServiceID:     appointment.ServiceID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	review, err = s.paymentRepo.CreateReview(ctx, review)
	if err != nil {
		if errors.Is(err, paymentsRepo.ErrDuplicateReview) {
			return nil, ErrReviewExists
		}
		s.logger.Error("AddReview: create review failed for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: AddReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddReview: review id=%d recorded for appointment id=%d", review.ID, req.AppointmentID)
	return models.FromDomainReview(review), nil
}
