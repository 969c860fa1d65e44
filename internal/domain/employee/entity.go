package employee

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage employees and review attendance
	RoleEmployee Role = "employee" // Regular employee
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Email         string
	PasswordHash  string
	Department    *string
	Position      *string
	Role          Role
	WorkStartTime string // "HH:MM", scheduled start of the working day
	WorkEndTime   string // "HH:MM", scheduled end of the working day
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin checks if the employee can manage other employees and approve
// attendance records.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
