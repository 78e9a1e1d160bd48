package slots

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

// Repository репозиторий для работы со слотами времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var slotColumns = []string{
	"id", "employee_id", "service_id", "start_time", "end_time",
	"status", "max_capacity", "current_bookings", "notes",
}

func slotFields(s *domain.TimeSlot) []interface{} {
	return []interface{}{
		&s.ID, &s.EmployeeID, &s.ServiceID, &s.StartTime, &s.EndTime,
		&s.Status, &s.MaxCapacity, &s.CurrentBookings, &s.Notes,
	}
}

// CreateBatch создает пакет слотов и возвращает их ID в порядке создания
// Слоты создаются доступными, без бронирований
// Проверки пересечений с существующими слотами нет - за это отвечает вызывающая сторона
func (r *Repository) CreateBatch(ctx context.Context, batch []*domain.TimeSlot) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, 0, len(batch))
	for _, slot := range batch {
		query, args, err := psqlbuilder.Insert("time_slots").
			Columns("employee_id", "service_id", "start_time", "end_time", "max_capacity", "notes").
			Values(slot.EmployeeID, slot.ServiceID, slot.StartTime, slot.EndTime, slot.MaxCapacity, slot.Notes).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
		}

		slot.Status = domain.SlotAvailable
		ids = append(ids, slot.ID)
	}

	return ids, nil
}

// GetByID получает слот по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - этого требует
// последовательность проверки вместимости и записи в Booking Engine
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(slotFields(&slot)...)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// ListAvailable возвращает доступные для записи слоты услуги на дату
// Исключает заполненные и заблокированные слоты; опционально фильтрует по сотруднику
func (r *Repository) ListAvailable(ctx context.Context, serviceID int64, date time.Time, employeeID *int64) ([]*domain.AvailableSlotDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"ts.id", "ts.employee_id", "ts.service_id", "ts.start_time", "ts.end_time",
		"ts.status", "ts.max_capacity", "ts.current_bookings", "ts.notes",
		"e.first_name", "e.last_name", "s.name",
	).
		From("time_slots ts").
		Join("employees e ON ts.employee_id = e.id").
		Join("services s ON ts.service_id = s.id").
		Where(squirrel.Eq{"ts.service_id": serviceID}).
		Where(squirrel.Eq{"ts.status": domain.SlotAvailable}).
		Where(squirrel.Expr("ts.current_bookings < ts.max_capacity")).
		Where(squirrel.Expr("ts.start_time::date = ?", date.Format(domain.DateFormat))).
		OrderBy("ts.start_time")

	if employeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"ts.employee_id": *employeeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlotDetails(rows)
}

// ListByEmployee возвращает слоты сотрудника (расписание), опционально на дату
func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64, date *time.Time) ([]*domain.AvailableSlotDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"ts.id", "ts.employee_id", "ts.service_id", "ts.start_time", "ts.end_time",
		"ts.status", "ts.max_capacity", "ts.current_bookings", "ts.notes",
		"e.first_name", "e.last_name", "s.name",
	).
		From("time_slots ts").
		Join("employees e ON ts.employee_id = e.id").
		Join("services s ON ts.service_id = s.id").
		Where(squirrel.Eq{"ts.employee_id": employeeID}).
		OrderBy("ts.start_time")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("ts.start_time::date = ?", date.Format(domain.DateFormat)))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlotDetails(rows)
}

// IncrementBookings увеличивает счетчик бронирований слота на единицу
// Запрос сам охраняет вместимость: строка обновляется только пока слот доступен
// и счетчик ниже max_capacity; при достижении вместимости статус становится booked.
// Возвращает ErrSlotNotAvailable, если слот занят, заблокирован или заполнен
func (r *Repository) IncrementBookings(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("status", squirrel.Expr(
			"CASE WHEN current_bookings + 1 >= max_capacity THEN 'booked' ELSE status END")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.SlotAvailable}).
		Where(squirrel.Expr("current_bookings < max_capacity")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// DecrementBookings уменьшает счетчик бронирований слота на единицу (не ниже нуля)
// Слот со статусом booked возвращается в available, как только счетчик
// опускается ниже вместимости; blocked и completed статус не меняют
func (r *Repository) DecrementBookings(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("current_bookings", squirrel.Expr("GREATEST(current_bookings - 1, 0)")).
		Set("status", squirrel.Expr(
			"CASE WHEN status = 'booked' AND GREATEST(current_bookings - 1, 0) < max_capacity THEN 'available' ELSE status END")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func scanSlotDetails(rows *sql.Rows) ([]*domain.AvailableSlotDetails, error) {
	result := make([]*domain.AvailableSlotDetails, 0)

	for rows.Next() {
		var details domain.AvailableSlotDetails
		fields := slotFields(&details.TimeSlot)
		fields = append(fields, &details.EmployeeFirstName, &details.EmployeeLastName, &details.ServiceName)

		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("%w: scanSlotDetails - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotDetails - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
