package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var employeeColumns = []string{
	"id", "first_name", "last_name", "position", "phone", "email",
	"specialization", "work_schedule", "is_active", "created_at",
}

func employeeFields(e *domain.Employee) []interface{} {
	return []interface{}{
		&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Phone, &e.Email,
		&e.Specialization, &e.WorkSchedule, &e.IsActive, &e.CreatedAt,
	}
}

// CreateEmployee создает нового сотрудника
func (r *Repository) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns("first_name", "last_name", "position", "phone", "email", "specialization", "work_schedule").
		Values(
			employee.FirstName,
			employee.LastName,
			employee.Position,
			employee.Phone,
			employee.Email,
			employee.Specialization,
			employee.WorkSchedule,
		).
		Suffix("RETURNING id, is_active, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEmployee - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&employee.ID,
		&employee.IsActive,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEmployee - execute insert: %v", ErrExecQuery, err)
	}

	return employee, nil
}

// GetEmployeeByID получает сотрудника по ID
func (r *Repository) GetEmployeeByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByID - build select query: %v", ErrBuildQuery, err)
	}

	var employee domain.Employee
	err = executor.QueryRowContext(ctx, query, args...).Scan(employeeFields(&employee)...)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployeeByID - scan employee: %v", ErrScanRow, err)
	}

	return &employee, nil
}

// ListEmployees возвращает сотрудников, опционально по должности
func (r *Repository) ListEmployees(ctx context.Context, filter domain.EmployeesFilter) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		OrderBy("last_name, first_name")

	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Position != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"position": *filter.Position})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(employeeFields(&employee)...); err != nil {
			return nil, fmt.Errorf("%w: ListEmployees - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
