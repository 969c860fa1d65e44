package attendance

import (
	"time"

	"github.com/worktrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string    `json:"-"`
	At         time.Time `json:"-"`
	Location   string    `json:"location,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Location == "" {
		r.Location = "Office"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string    `json:"-"`
	At         time.Time `json:"-"`
	Location   string    `json:"location,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Location == "" {
		r.Location = "Office"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	Time        string `json:"time"`
	Location    string `json:"location"`
	Late        bool   `json:"late"`
	LateMinutes int    `json:"late_minutes"`
}

type CheckOutResponse struct {
	Time         string `json:"time"`
	Location     string `json:"location"`
	Early        bool   `json:"early"`
	EarlyMinutes int    `json:"early_minutes"`
}

type AttendanceResponse struct {
	ID                 string            `json:"id"`
	EmployeeID         string            `json:"employee_id"`
	EmployeeCode       *string           `json:"employee_code,omitempty"`
	EmployeeName       *string           `json:"employee_name,omitempty"`
	EmployeeDepartment *string           `json:"employee_department,omitempty"`
	EmployeePosition   *string           `json:"employee_position,omitempty"`
	Date               string            `json:"date"`
	CheckIn            *CheckInResponse  `json:"check_in,omitempty"`
	CheckOut           *CheckOutResponse `json:"check_out,omitempty"`
	Status             string            `json:"status"`
	TotalHours         float64           `json:"total_hours"`
	Approved           bool              `json:"approved"`
	ApprovedBy         *string           `json:"approved_by,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// QueryFilter selects either a single day or a whole month, optionally
// narrowed to one employee by code. Used by the admin listing, the
// exception listing and both export formats.
type QueryFilter struct {
	Date         *string `json:"date,omitempty"` // YYYY-MM-DD
	Month        *int    `json:"month,omitempty"`
	Year         *int    `json:"year,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

func (f *QueryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkApproveRequest struct {
	AttendanceIDs []string `json:"attendance_ids"`
}

func (r *BulkApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.AttendanceIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_ids",
			Message: "attendance_ids is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkApproveResponse struct {
	ApprovedCount int64 `json:"approved_count"`
}
