package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/attendance-backend-go/internal/domain/auth"
	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService. A wrong code and a wrong password both
// come back as ErrInvalidCredentials so the response does not reveal which
// part failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		Employee:             mapEmployeeToResponse(emp),
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
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
