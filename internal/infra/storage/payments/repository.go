package payments

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий платежей и отзывов
// Обе сущности привязаны к завершенной работе с записью, живут вместе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var paymentColumns = []string{
	"id", "appointment_id", "client_id", "amount", "payment_method",
	"status", "transaction_id", "payment_date", "notes",
}

func paymentFields(p *domain.Payment) []interface{} {
	return []interface{}{
		&p.ID, &p.AppointmentID, &p.ClientID, &p.Amount, &p.Method,
		&p.Status, &p.TransactionID, &p.PaymentDate, &p.Notes,
	}
}

// CreatePayment записывает платеж
func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("appointment_id", "client_id", "amount", "payment_method", "status", "transaction_id", "notes").
		Values(
			payment.AppointmentID,
			payment.ClientID,
			payment.Amount,
			payment.Method,
			payment.Status,
			payment.TransactionID,
			payment.Notes,
		).
		Suffix("RETURNING id, payment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - execute insert: %v", ErrExecQuery, err)
	}

	return payment, nil
}

// ListByAppointment возвращает платежи по записи в порядке оформления
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("payment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(paymentFields(&payment)...); err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CreateReview записывает отзыв по завершенной записи
// На одну запись допускается один отзыв - повторная вставка
// упирается в уникальный индекс и возвращает ErrDuplicateReview
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("appointment_id", "client_id", "employee_id", "service_id", "rating", "comment").
		Values(
			review.AppointmentID,
			review.ClientID,
			review.EmployeeID,
			review.ServiceID,
			review.Rating,
			review.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReview - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: CreateReview - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}
