package employee

import (
	"context"
	"strings"

	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

type EmployeeService interface {
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type RegisterEmployeeRequest struct {
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Department    *string `json:"department,omitempty"`
	Position      *string `json:"position,omitempty"`
	Role          string  `json:"role,omitempty"`
	WorkStartTime string  `json:"work_start_time,omitempty"`
	WorkEndTime   string  `json:"work_end_time,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 3-20 uppercase letters or digits",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleEmployee)
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, admin",
		})
	}

	// Schedule defaults mirror a standard 09:00-18:00 working day.
	if r.WorkStartTime == "" {
		r.WorkStartTime = "09:00"
	}
	if r.WorkEndTime == "" {
		r.WorkEndTime = "18:00"
	}
	if !validator.IsValidTimeOfDay(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidTimeOfDay(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	FullName      *string `json:"full_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Department    *string `json:"department,omitempty"`
	Position      *string `json:"position,omitempty"`
	Role          *string `json:"role,omitempty"`
	WorkStartTime *string `json:"work_start_time,omitempty"`
	WorkEndTime   *string `json:"work_end_time,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleEmployee), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, admin",
		})
	}

	if r.WorkStartTime != nil && !validator.IsValidTimeOfDay(*r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}
	if r.WorkEndTime != nil && !validator.IsValidTimeOfDay(*r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeesFilter struct {
	// Search matches name, employee code or email, case-insensitive.
	Search *string `json:"search,omitempty"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Department    *string `json:"department,omitempty"`
	Position      *string `json:"position,omitempty"`
	Role          string  `json:"role"`
	WorkStartTime string  `json:"work_start_time"`
	WorkEndTime   string  `json:"work_end_time"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
