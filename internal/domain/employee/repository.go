package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string, excludeID *string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}
