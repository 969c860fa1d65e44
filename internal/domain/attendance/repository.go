package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The store owns the (employee_id, date) uniqueness constraint: a Create
// that loses a concurrent-insert race returns ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	// Create inserts a new daily record and returns it with generated fields.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on a
	// specific day boundary. Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// SetCheckIn writes the check-in sub-record and status onto an existing
	// record. Used when a record was pre-seeded without a check-in.
	SetCheckIn(ctx context.Context, id string, detail CheckInDetail, status Status) error

	// SetCheckOut writes the check-out sub-record and the computed total
	// hours. It never touches the check-in fields.
	SetCheckOut(ctx context.Context, id string, detail CheckOutDetail, totalHours float64) error

	// ListByEmployeeSince returns an employee's records with date >= since,
	// newest first.
	ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]Attendance, error)

	// List returns records newest first, optionally bounded to [Start, End)
	// and restricted to one employee and/or to late/early exceptions.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// BulkApprove marks the given records approved and records the approver.
	// Unknown ids are ignored; returns the number of rows actually updated.
	BulkApprove(ctx context.Context, ids []string, approvedBy string) (int64, error)
}

// ListFilter is the resolved form of a range query: an absolute [Start, End)
// window (either side may be open) plus optional predicates.
type ListFilter struct {
	Start          *time.Time
	End            *time.Time
	EmployeeID     *string
	OnlyExceptions bool
}
