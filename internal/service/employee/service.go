package employee

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
	"github.com/worktrack/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	db *database.DB
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		db:                 db,
	}
}

// inTx runs fn inside a single database transaction so a uniqueness check
// and the write that depends on it are atomic. A nil db runs fn directly;
// in-memory repositories have no transactions.
func (s *EmployeeServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = s.inTx(ctx, func(ctx context.Context) error {
		exists, err := s.EmployeeRepository.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email, nil)
		if err != nil {
			return fmt.Errorf("failed to check employee uniqueness: %w", err)
		}
		if exists {
			return employee.ErrEmployeeCodeExists
		}

		created, err = s.EmployeeRepository.Create(ctx, employee.Employee{
			EmployeeCode:  req.EmployeeCode,
			FullName:      req.FullName,
			Email:         req.Email,
			PasswordHash:  string(hash),
			Department:    req.Department,
			Position:      req.Position,
			Role:          employee.Role(req.Role),
			WorkStartTime: req.WorkStartTime,
			WorkEndTime:   req.WorkEndTime,
			IsActive:      true,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToResponse(emp))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

// Update implements employee.EmployeeService. Only the fields present in the
// request are changed; the employee code is immutable.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Email != nil && *req.Email != emp.Email {
			exists, err := s.EmployeeRepository.ExistsByCodeOrEmail(ctx, "", *req.Email, &emp.ID)
			if err != nil {
				return fmt.Errorf("failed to check email uniqueness: %w", err)
			}
			if exists {
				return employee.ErrEmailExists
			}
			emp.Email = *req.Email
		}

		if req.FullName != nil {
			emp.FullName = *req.FullName
		}
		if req.Department != nil {
			emp.Department = req.Department
		}
		if req.Position != nil {
			emp.Position = req.Position
		}
		if req.Role != nil {
			emp.Role = employee.Role(*req.Role)
		}
		if req.WorkStartTime != nil {
			emp.WorkStartTime = *req.WorkStartTime
		}
		if req.WorkEndTime != nil {
			emp.WorkEndTime = *req.WorkEndTime
		}
		if req.IsActive != nil {
			emp.IsActive = *req.IsActive
		}

		return s.EmployeeRepository.Update(ctx, emp)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(updated), nil
}

// Delete implements employee.EmployeeService. An admin cannot delete their
// own account.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return employee.ErrCannotDeleteSelf
	}
	return s.EmployeeRepository.Delete(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Email:         emp.Email,
		Department:    emp.Department,
		Position:      emp.Position,
		Role:          string(emp.Role),
		WorkStartTime: emp.WorkStartTime,
		WorkEndTime:   emp.WorkEndTime,
		IsActive:      emp.IsActive,
		CreatedAt:     emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
