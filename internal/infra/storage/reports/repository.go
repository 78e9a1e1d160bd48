package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий отчетов - только чтение и агрегаты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// DailySummary собирает сводку по записям и платежам за день
// День без записей возвращает нулевые агрегаты, а не ошибку
func (r *Repository) DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	summary := &domain.DailySummary{
		Date:     date,
		Payments: make([]domain.PaymentMethodTotal, 0),
	}

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COUNT(*) FILTER (WHERE status = 'no_show')",
		"COALESCE(SUM(price), 0)",
		"COALESCE(SUM(prepayment), 0)",
	).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DailySummary - build appointments query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&summary.TotalAppointments,
		&summary.Completed,
		&summary.Cancelled,
		&summary.NoShow,
		&summary.TotalRevenue,
		&summary.TotalPrepayment,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: DailySummary - scan appointment totals: %v", ErrScanRow, err)
	}

	// Платежи группируются по способу оплаты за календарный день
	query, args, err = psqlbuilder.Select(
		"payment_method",
		"COUNT(*)",
		"COALESCE(SUM(amount), 0)",
	).
		From("payments").
		Where(squirrel.Expr("payment_date::date = ?", date.Format(domain.DateFormat))).
		GroupBy("payment_method").
		OrderBy("payment_method").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DailySummary - build payments query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailySummary - execute payments query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var total domain.PaymentMethodTotal
		if err := rows.Scan(&total.Method, &total.Count, &total.TotalPaid); err != nil {
			return nil, fmt.Errorf("%w: DailySummary - scan payment total: %v", ErrScanRow, err)
		}
		summary.Payments = append(summary.Payments, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailySummary - payments rows error: %v", ErrScanRow, err)
	}

	return summary, nil
}

// ClientStatistics собирает статистику клиента за все время
// total_spent не включает отмененные записи и no-show,
// gross_booked считает price по всем записям независимо от статуса
func (r *Repository) ClientStatistics(ctx context.Context, clientID int64) (*domain.ClientStatistics, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COALESCE(SUM(price) FILTER (WHERE status NOT IN ('cancelled', 'no_show')), 0)",
		"COALESCE(SUM(price), 0)",
		"MIN(appointment_date)",
		"MAX(appointment_date)",
	).
		From("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ClientStatistics - build select query: %v", ErrBuildQuery, err)
	}

	stats := &domain.ClientStatistics{ClientID: clientID}
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalAppointments,
		&stats.Completed,
		&stats.Cancelled,
		&stats.TotalSpent,
		&stats.GrossBooked,
		&stats.FirstAppointment,
		&stats.LastAppointment,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: ClientStatistics - scan statistics: %v", ErrScanRow, err)
	}

	return stats, nil
}
