package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_location, a.check_in_late, a.check_in_late_minutes,
	a.check_out_time, a.check_out_location, a.check_out_early, a.check_out_early_minutes,
	a.status, a.total_hours, a.approved, a.approved_by, a.notes,
	a.created_at, a.updated_at,
	e.employee_code, e.full_name, e.department, e.position`

// attendanceRow is the flat column shape of an attendance record. The
// nested check-in/out value structs are assembled after scanning.
type attendanceRow struct {
	id                  string
	employeeID          string
	date                time.Time
	checkInTime         *time.Time
	checkInLocation     *string
	checkInLate         bool
	checkInLateMinutes  int
	checkOutTime        *time.Time
	checkOutLocation    *string
	checkOutEarly       bool
	checkOutEarlyMins   int
	status              string
	totalHours          float64
	approved            bool
	approvedBy          *string
	notes               *string
	createdAt           time.Time
	updatedAt           time.Time
	employeeCode        *string
	employeeName        *string
	employeeDepartment  *string
	employeePosition    *string
}

func (r *attendanceRow) scanTargets() []interface{} {
	return []interface{}{
		&r.id, &r.employeeID, &r.date,
		&r.checkInTime, &r.checkInLocation, &r.checkInLate, &r.checkInLateMinutes,
		&r.checkOutTime, &r.checkOutLocation, &r.checkOutEarly, &r.checkOutEarlyMins,
		&r.status, &r.totalHours, &r.approved, &r.approvedBy, &r.notes,
		&r.createdAt, &r.updatedAt,
		&r.employeeCode, &r.employeeName, &r.employeeDepartment, &r.employeePosition,
	}
}

func (r *attendanceRow) toEntity() attendance.Attendance {
	att := attendance.Attendance{
		ID:                 r.id,
		EmployeeID:         r.employeeID,
		Date:               r.date,
		Status:             attendance.Status(r.status),
		TotalHours:         r.totalHours,
		Approved:           r.approved,
		ApprovedBy:         r.approvedBy,
		Notes:              r.notes,
		CreatedAt:          r.createdAt,
		UpdatedAt:          r.updatedAt,
		EmployeeCode:       r.employeeCode,
		EmployeeName:       r.employeeName,
		EmployeeDepartment: r.employeeDepartment,
		EmployeePosition:   r.employeePosition,
	}
	if r.checkInTime != nil {
		att.CheckIn = &attendance.CheckInDetail{
			Time:        *r.checkInTime,
			Location:    strOrEmpty(r.checkInLocation),
			Late:        r.checkInLate,
			LateMinutes: r.checkInLateMinutes,
		}
	}
	if r.checkOutTime != nil {
		att.CheckOut = &attendance.CheckOutDetail{
			Time:         *r.checkOutTime,
			Location:     strOrEmpty(r.checkOutLocation),
			Early:        r.checkOutEarly,
			EarlyMinutes: r.checkOutEarlyMins,
		}
	}
	return att
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) is the authority for daily-record uniqueness: a
// concurrent duplicate insert surfaces as ErrAlreadyCheckedIn.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date,
			check_in_time, check_in_location, check_in_late, check_in_late_minutes,
			status, total_hours, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	var checkInTime *time.Time
	var checkInLocation *string
	var late bool
	var lateMinutes int
	if att.CheckIn != nil {
		checkInTime = &att.CheckIn.Time
		checkInLocation = &att.CheckIn.Location
		late = att.CheckIn.Late
		lateMinutes = att.CheckIn.LateMinutes
	}

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		checkInTime,
		checkInLocation,
		late,
		lateMinutes,
		string(att.Status),
		att.TotalHours,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var row attendanceRow
	err := q.QueryRow(ctx, query, employeeID, day).Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	att := row.toEntity()
	return &att, nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckIn(ctx context.Context, id string, detail attendance.CheckInDetail, status attendance.Status) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in_time = $1,
		    check_in_location = $2,
		    check_in_late = $3,
		    check_in_late_minutes = $4,
		    status = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		detail.Time, detail.Location, detail.Late, detail.LateMinutes, string(status), id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to set check-in: %w", err)
	}

	return nil
}

// SetCheckOut implements attendance.AttendanceRepository. Touches only the
// check-out fields and total hours, never the check-in sub-record.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, detail attendance.CheckOutDetail, totalHours float64) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1,
		    check_out_location = $2,
		    check_out_early = $3,
		    check_out_early_minutes = $4,
		    total_hours = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		detail.Time, detail.Location, detail.Early, detail.EarlyMinutes, totalHours, id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}

	return nil
}

// ListByEmployeeSince implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date >= $2
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Start != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.Start)
		argIdx++
	}
	if filter.End != nil {
		baseWhere += fmt.Sprintf(" AND a.date < $%d", argIdx)
		args = append(args, *filter.End)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.OnlyExceptions {
		baseWhere += " AND (a.check_in_late OR a.check_out_early)"
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC, e.employee_code ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// BulkApprove implements attendance.AttendanceRepository. Only the approval
// fields are written, so this is safe to run concurrently with check-in/out
// updates against the same rows.
func (a *attendanceRepository) BulkApprove(ctx context.Context, ids []string, approvedBy string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET approved = TRUE,
		    approved_by = $1,
		    updated_at = NOW()
		WHERE id = ANY($2::uuid[])
	`

	tag, err := q.Exec(ctx, query, approvedBy, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk approve attendances: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var row attendanceRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return attendances, nil
}
