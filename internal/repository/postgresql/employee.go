package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, email, password_hash, department, position,
	role, work_start_time, work_end_time, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var role string
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.PasswordHash,
		&emp.Department, &emp.Position, &role, &emp.WorkStartTime, &emp.WorkEndTime,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Role = employee.Role(role)
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE (employee_code = $1 OR email = $2)
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeCode, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, email, password_hash, department, position,
			role, work_start_time, work_end_time, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.Department,
		newEmployee.Position,
		string(newEmployee.Role),
		newEmployee.WorkStartTime,
		newEmployee.WorkEndTime,
		newEmployee.IsActive,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1,
		    email = $2,
		    department = $3,
		    position = $4,
		    role = $5,
		    work_start_time = $6,
		    work_end_time = $7,
		    is_active = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName,
		emp.Email,
		emp.Department,
		emp.Position,
		string(emp.Role),
		emp.WorkStartTime,
		emp.WorkEndTime,
		emp.IsActive,
		emp.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}

	if filter.Search != nil && *filter.Search != "" {
		query += ` WHERE full_name ILIKE $1 OR employee_code ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+*filter.Search+"%")
	}

	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
