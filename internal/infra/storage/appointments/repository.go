package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var appointmentColumns = []string{
	"id", "client_id", "slot_id", "service_id", "employee_id",
	"appointment_date", "start_time", "end_time", "status",
	"price", "prepayment", "notes", "reminder_sent", "created_at", "updated_at",
}

func appointmentFields(a *domain.Appointment) []interface{} {
	return []interface{}{
		&a.ID, &a.ClientID, &a.SlotID, &a.ServiceID, &a.EmployeeID,
		&a.AppointmentDate, &a.StartTime, &a.EndTime, &a.Status,
		&a.Price, &a.Prepayment, &a.Notes, &a.ReminderSent, &a.CreatedAt, &a.UpdatedAt,
	}
}

func prefixedAppointmentColumns() []string {
	cols := make([]string, 0, len(appointmentColumns))
	for _, c := range appointmentColumns {
		cols = append(cols, "a."+c)
	}
	return cols
}

// Create создает новую запись
// Денормализованные поля (service_id, employee_id, дата и время, цена)
// заполняет вызывающая сторона из данных слота на момент бронирования
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id", "slot_id", "service_id", "employee_id",
			"appointment_date", "start_time", "end_time",
			"price", "prepayment", "notes",
		).
		Values(
			appointment.ClientID,
			appointment.SlotID,
			appointment.ServiceID,
			appointment.EmployeeID,
			appointment.AppointmentDate,
			appointment.StartTime,
			appointment.EndTime,
			appointment.Price,
			appointment.Prepayment,
			appointment.Notes,
		).
		Suffix("RETURNING id, status, reminder_sent, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.Status,
		&appointment.ReminderSent,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByID получает запись по ID
// Внутри транзакции блокирует строку (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appointment domain.Appointment
	err = executor.QueryRowContext(ctx, query, args...).Scan(appointmentFields(&appointment)...)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return &appointment, nil
}

// GetDetailsByID получает запись вместе с данными клиента, сотрудника и услуги
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	var details domain.AppointmentDetails
	err = executor.QueryRowContext(ctx, query, args...).Scan(detailsFields(&details)...)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan appointment: %v", ErrScanRow, err)
	}

	return &details, nil
}

// ListByClient возвращает записи клиента, новые первыми
// При upcomingOnly оставляет только активные записи с сегодняшней даты и позже
func (r *Repository) ListByClient(ctx context.Context, clientID int64, upcomingOnly bool, now time.Time) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailsSelect().
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.appointment_date DESC, a.start_time DESC")

	if upcomingOnly {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"a.appointment_date": now.Format(domain.DateFormat)}).
			Where(squirrel.Eq{"a.status": []domain.AppointmentStatus{domain.StatusScheduled, domain.StatusConfirmed}})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// ListDaily возвращает записи на день, отсортированные по времени начала
func (r *Repository) ListDaily(ctx context.Context, filter domain.DailyAppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := detailsSelect().
		Where(squirrel.Eq{"a.appointment_date": filter.Date.Format(domain.DateFormat)}).
		OrderBy("a.start_time")

	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.employee_id": *filter.EmployeeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaily - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDaily - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// UpdateStatus меняет статус записи
// Проверку допустимости перехода выполняет сервисный слой
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel помечает запись отмененной и дописывает причину отмены к заметкам
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if reason != nil && *reason != "" {
		// Причину дописываем к существующим заметкам, не затирая их
		updateBuilder = updateBuilder.Set("notes", squirrel.Expr(
			"TRIM(BOTH E'\\n' FROM COALESCE(notes, '') || E'\\n' || ?)", "Отмена: "+*reason))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// AddPrepayment увеличивает предоплату записи на сумму платежа
func (r *Repository) AddPrepayment(ctx context.Context, id int64, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("prepayment", squirrel.Expr("prepayment + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddPrepayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddPrepayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddPrepayment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// dueRemindersQuery отбирает записи по единственной верхней границе cutoff:
// запись, начало которой уже прошло, все равно попадает в выборку,
// пока по ней не отправлено напоминание
func dueRemindersQuery(cutoff time.Time) squirrel.SelectBuilder {
	return detailsSelect().
		Where(squirrel.Eq{"a.status": domain.ReminderStatuses}).
		Where(squirrel.Eq{"a.reminder_sent": false}).
		Where(squirrel.Expr("a.appointment_date + a.start_time <= ?", cutoff)).
		OrderBy("a.appointment_date, a.start_time")
}

// ListDueReminders возвращает активные записи, начинающиеся до cutoff,
// по которым напоминание еще не отправлялось
func (r *Repository) ListDueReminders(ctx context.Context, cutoff time.Time) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := dueRemindersQuery(cutoff).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueReminders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueReminders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// MarkReminderSent помечает напоминание отправленным
// Вызывается только после подтвержденной доставки уведомления
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("reminder_sent", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func detailsSelect() squirrel.SelectBuilder {
	columns := append(prefixedAppointmentColumns(),
		"c.first_name", "c.last_name", "c.phone",
		"e.first_name", "e.last_name", "s.name",
	)

	return psqlbuilder.Select(columns...).
		From("appointments a").
		Join("clients c ON a.client_id = c.id").
		Join("employees e ON a.employee_id = e.id").
		Join("services s ON a.service_id = s.id")
}

func detailsFields(d *domain.AppointmentDetails) []interface{} {
	fields := appointmentFields(&d.Appointment)
	return append(fields,
		&d.ClientFirstName, &d.ClientLastName, &d.ClientPhone,
		&d.EmployeeFirstName, &d.EmployeeLastName, &d.ServiceName,
	)
}

func scanDetails(rows *sql.Rows) ([]*domain.AppointmentDetails, error) {
	result := make([]*domain.AppointmentDetails, 0)

	for rows.Next() {
		var details domain.AppointmentDetails
		if err := rows.Scan(detailsFields(&details)...); err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
