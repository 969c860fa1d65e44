package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/timeday"
)

// AttendanceServiceImpl is the attendance ledger. All day-window math uses
// the reference timezone; record uniqueness is enforced by the store.
type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	atLocal := at.In(s.loc)
	day := timeday.DayStart(at, s.loc)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	workStart, err := timeday.Parse(emp.WorkStartTime)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid work schedule for employee %s: %w", emp.EmployeeCode, err)
	}
	scheduledStart := workStart.On(atLocal)

	// Strictly after: an exact-on-time check-in is never late.
	late := atLocal.After(scheduledStart)
	lateMinutes := 0
	if late {
		lateMinutes = timeday.WholeMinutesBetween(scheduledStart, atLocal)
	}

	detail := attendance.CheckInDetail{
		Time:        at,
		Location:    req.Location,
		Late:        late,
		LateMinutes: lateMinutes,
	}

	if existing == nil {
		_, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       day,
			CheckIn:    &detail,
			Status:     attendance.StatusPresent,
		})
		// A lost insert race against a concurrent check-in surfaces here
		// as ErrAlreadyCheckedIn; pass it through untouched.
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
	} else {
		// Pre-seeded record without a check-in: fill it in, only promoting
		// a pending status to present.
		status := existing.Status
		if status == attendance.StatusPending {
			status = attendance.StatusPresent
		}
		if err := s.AttendanceRepository.SetCheckIn(ctx, existing.ID, detail, status); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	return s.reload(ctx, req.EmployeeID, day)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	atLocal := at.In(s.loc)
	day := timeday.DayStart(at, s.loc)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	workEnd, err := timeday.Parse(emp.WorkEndTime)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid work schedule for employee %s: %w", emp.EmployeeCode, err)
	}
	scheduledEnd := workEnd.On(atLocal)

	// Strictly before: leaving exactly at the scheduled end is not early.
	early := atLocal.Before(scheduledEnd)
	earlyMinutes := 0
	if early {
		earlyMinutes = timeday.WholeMinutesBetween(atLocal, scheduledEnd)
	}

	worked := at.Sub(rec.CheckIn.Time)
	if worked < 0 {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidInterval
	}

	detail := attendance.CheckOutDetail{
		Time:         at,
		Location:     req.Location,
		Early:        early,
		EarlyMinutes: earlyMinutes,
	}

	if err := s.AttendanceRepository.SetCheckOut(ctx, rec.ID, detail, worked.Hours()); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.reload(ctx, req.EmployeeID, day)
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	day := timeday.DayStart(time.Now(), s.loc)

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := s.mapToResponse(*rec)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID string, sinceDaysAgo int) ([]attendance.AttendanceResponse, error) {
	if sinceDaysAgo <= 0 {
		sinceDaysAgo = 30
	}

	since := timeday.DayStart(time.Now(), s.loc).AddDate(0, 0, -sinceDaysAgo)
	records, err := s.AttendanceRepository.ListByEmployeeSince(ctx, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	return s.mapAllToResponse(records), nil
}

// Query implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Query(ctx context.Context, filter attendance.QueryFilter) ([]attendance.AttendanceResponse, error) {
	return s.query(ctx, filter, false)
}

// ListExceptions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListExceptions(ctx context.Context, filter attendance.QueryFilter) ([]attendance.AttendanceResponse, error) {
	return s.query(ctx, filter, true)
}

func (s *AttendanceServiceImpl) query(ctx context.Context, filter attendance.QueryFilter, onlyExceptions bool) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	listFilter, known, err := s.resolveFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !known {
		// An employee-code filter that matches nobody yields an empty
		// result, not an error.
		return []attendance.AttendanceResponse{}, nil
	}
	listFilter.OnlyExceptions = onlyExceptions

	records, err := s.AttendanceRepository.List(ctx, listFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}

	return s.mapAllToResponse(records), nil
}

// resolveFilter turns the day-or-month query shape into an absolute range.
// The second return value is false when the employee-code filter does not
// resolve to a known employee.
func (s *AttendanceServiceImpl) resolveFilter(ctx context.Context, filter attendance.QueryFilter) (attendance.ListFilter, bool, error) {
	var resolved attendance.ListFilter

	if filter.Date != nil && *filter.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *filter.Date, s.loc)
		if err != nil {
			return attendance.ListFilter{}, false, fmt.Errorf("invalid date filter: %w", err)
		}
		end := parsed.AddDate(0, 0, 1)
		resolved.Start = &parsed
		resolved.End = &end
	} else if filter.Month != nil && filter.Year != nil {
		start, end := timeday.MonthRange(*filter.Year, time.Month(*filter.Month), s.loc)
		resolved.Start = &start
		resolved.End = &end
	}

	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, *filter.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return attendance.ListFilter{}, false, nil
			}
			return attendance.ListFilter{}, false, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		resolved.EmployeeID = &emp.ID
	}

	return resolved, true, nil
}

// BulkApprove implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BulkApprove(ctx context.Context, req attendance.BulkApproveRequest, approverID string) (attendance.BulkApproveResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkApproveResponse{}, err
	}

	count, err := s.AttendanceRepository.BulkApprove(ctx, req.AttendanceIDs, approverID)
	if err != nil {
		return attendance.BulkApproveResponse{}, fmt.Errorf("failed to bulk approve: %w", err)
	}

	return attendance.BulkApproveResponse{ApprovedCount: count}, nil
}

func (s *AttendanceServiceImpl) reload(ctx context.Context, employeeID string, day time.Time) (attendance.AttendanceResponse, error) {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	return s.mapToResponse(*rec), nil
}

func (s *AttendanceServiceImpl) mapAllToResponse(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapToResponse(rec))
	}
	return responses
}

func (s *AttendanceServiceImpl) mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                 att.ID,
		EmployeeID:         att.EmployeeID,
		EmployeeCode:       att.EmployeeCode,
		EmployeeName:       att.EmployeeName,
		EmployeeDepartment: att.EmployeeDepartment,
		EmployeePosition:   att.EmployeePosition,
		Date:               att.Date.In(s.loc).Format("2006-01-02"),
		Status:             string(att.Status),
		TotalHours:         att.TotalHours,
		Approved:           att.Approved,
		ApprovedBy:         att.ApprovedBy,
		Notes:              att.Notes,
		CreatedAt:          att.CreatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
		UpdatedAt:          att.UpdatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
	}
	if att.CheckIn != nil {
		resp.CheckIn = &attendance.CheckInResponse{
			Time:        att.CheckIn.Time.In(s.loc).Format("2006-01-02 15:04:05"),
			Location:    att.CheckIn.Location,
			Late:        att.CheckIn.Late,
			LateMinutes: att.CheckIn.LateMinutes,
		}
	}
	if att.CheckOut != nil {
		resp.CheckOut = &attendance.CheckOutResponse{
			Time:         att.CheckOut.Time.In(s.loc).Format("2006-01-02 15:04:05"),
			Location:     att.CheckOut.Location,
			Early:        att.CheckOut.Early,
			EarlyMinutes: att.CheckOut.EarlyMinutes,
		}
	}
	return resp
}
