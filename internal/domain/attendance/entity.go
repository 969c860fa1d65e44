package attendance

import (
	"time"
)

type Status string

const (
	// StatusPending is the default for records seeded before any check-in.
	StatusPending Status = "pending"
	// StatusPresent is set by the first check-in of the day.
	StatusPresent Status = "present"
	// StatusAbsent and StatusHalfDay are administrative classifications.
	// Nothing in the check-in/out flow produces them; they exist so an
	// external batch job can store them.
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// CheckInDetail is the embedded check-in sub-record. Late and LateMinutes
// are derived once, at check-in time, against the employee's scheduled
// work start.
type CheckInDetail struct {
	Time        time.Time
	Location    string
	Late        bool
	LateMinutes int
}

// CheckOutDetail mirrors CheckInDetail for the end of the day. A record
// never carries a CheckOutDetail without a CheckInDetail.
type CheckOutDetail struct {
	Time         time.Time
	Location     string
	Early        bool
	EarlyMinutes int
}

// Attendance is one employee's record for one calendar day. Date is always
// the day boundary (00:00 in the reference timezone), never the literal
// check-in timestamp; the storage layer enforces uniqueness on
// (employee_id, date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *CheckInDetail
	CheckOut   *CheckOutDetail
	Status     Status
	TotalHours float64
	Approved   bool
	ApprovedBy *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from employees for listings and reports
	EmployeeCode       *string
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeePosition   *string
}

// IsException reports whether the record was flagged late or early.
func (a *Attendance) IsException() bool {
	if a.CheckIn != nil && a.CheckIn.Late {
		return true
	}
	if a.CheckOut != nil && a.CheckOut.Early {
		return true
	}
	return false
}
