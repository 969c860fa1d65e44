package auth

import (
	"context"
	"strings"

	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}

type LoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Password = strings.TrimSpace(r.Password)

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken          string                    `json:"access_token"`
	AccessTokenExpiresAt int64                     `json:"access_token_expires_at"`
	Employee             employee.EmployeeResponse `json:"employee"`
}
