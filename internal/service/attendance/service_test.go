package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/employee"
	"github.com/worktrack/attendance-backend-go/internal/pkg/timeday"
)

// fakeAttendanceRepo is an in-memory AttendanceRepository that enforces the
// same (employee_id, date) uniqueness the real store does.
type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance // keyed by id
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	att.ID = uuid.New().String()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	copied := att
	f.records[att.ID] = &copied
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(day) {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetCheckIn(_ context.Context, id string, detail attendance.CheckInDetail, status attendance.Status) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.CheckIn = &detail
	rec.Status = status
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, detail attendance.CheckOutDetail, totalHours float64) error {
	rec, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.CheckOut = &detail
	rec.TotalHours = totalHours
	rec.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeSince(_ context.Context, employeeID string, since time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(since) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if filter.Start != nil && rec.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && !rec.Date.Before(*filter.End) {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.OnlyExceptions && !rec.IsException() {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) BulkApprove(_ context.Context, ids []string, approvedBy string) (int64, error) {
	var count int64
	for _, id := range ids {
		if rec, ok := f.records[id]; ok {
			rec.Approved = true
			rec.ApprovedBy = &approvedBy
			count++
		}
	}
	return count, nil
}

// fakeEmployeeRepo covers the two lookups the ledger uses.
type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by id
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCodeOrEmail(_ context.Context, _, _ string, _ *string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeesFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:            uuid.New().String(),
		EmployeeCode:  "EMP001",
		FullName:      "Jane Tester",
		Email:         "jane@company.com",
		Role:          employee.RoleEmployee,
		WorkStartTime: "09:00",
		WorkEndTime:   "18:00",
		IsActive:      true,
	}
}

func newTestService(emp employee.Employee) (attendance.AttendanceService, *fakeAttendanceRepo) {
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	return NewAttendanceService(attRepo, empRepo, time.UTC), attRepo
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestCheckIn_OnTimeIsNotLate(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)

	assert.False(t, resp.CheckIn.Late)
	assert.Equal(t, 0, resp.CheckIn.LateMinutes)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "Office", resp.CheckIn.Location)
}

func TestCheckIn_LateMinutesAreWholeMinutes(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	// 15 min 30 s after 09:00 truncates to 15 whole minutes.
	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:15:30"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)

	assert.True(t, resp.CheckIn.Late)
	assert.Equal(t, 15, resp.CheckIn.LateMinutes)
}

func TestCheckIn_BeforeScheduleIsNotLate(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 08:55:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)

	assert.False(t, resp.CheckIn.Late)
	assert.Equal(t, 0, resp.CheckIn.LateMinutes)
}

func TestCheckIn_TwiceSameDayFails(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 13:00:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NextDayAllowed(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-03 09:05:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", resp.Date)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(testEmployee())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: uuid.New().String(),
		At:         at(t, "2026-03-02 09:00:00"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckIn_FillsPreSeededRecord(t *testing.T) {
	emp := testEmployee()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, time.UTC)

	day := timeday.DayStart(at(t, "2026-03-02 00:00:00"), time.UTC)
	seeded, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		Status:     attendance.StatusPending,
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:10:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, resp.ID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.True(t, resp.CheckIn.Late)
	assert.Equal(t, 10, resp.CheckIn.LateMinutes)
}

func TestCheckOut_WithoutCheckInFails(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 18:00:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_TwiceFails(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 18:00:00"),
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 19:00:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_TotalHours(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 17:30:00"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 8.5, resp.TotalHours, 1e-9)
}

func TestCheckOut_EarlyMinutes(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 17:45:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)

	assert.True(t, resp.CheckOut.Early)
	assert.Equal(t, 15, resp.CheckOut.EarlyMinutes)
}

func TestCheckOut_AtScheduleEndIsNotEarly(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 18:00:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)

	assert.False(t, resp.CheckOut.Early)
	assert.Equal(t, 0, resp.CheckOut.EarlyMinutes)
}

func TestCheckOut_BeforeCheckInFails(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 10:00:00"),
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:30:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidInterval)
}

func TestCheckOut_PreservesCheckInDetail(t *testing.T) {
	emp := testEmployee()
	svc, attRepo := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:20:00"),
	})
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 18:00:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckIn)
	assert.True(t, resp.CheckIn.Late)
	assert.Equal(t, 20, resp.CheckIn.LateMinutes)

	stored := attRepo.records[resp.ID]
	require.NotNil(t, stored.CheckIn)
	require.NotNil(t, stored.CheckOut)
}

func TestQuery_ByDay(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	for _, ts := range []string{"2026-03-02 09:00:00", "2026-03-03 09:00:00"} {
		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: emp.ID,
			At:         at(t, ts),
		})
		require.NoError(t, err)
	}

	date := "2026-03-02"
	results, err := svc.Query(context.Background(), attendance.QueryFilter{Date: &date})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "2026-03-02", results[0].Date)
}

func TestQuery_ByMonth(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	for _, ts := range []string{"2026-02-27 09:00:00", "2026-03-02 09:00:00", "2026-03-31 09:00:00", "2026-04-01 09:00:00"} {
		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: emp.ID,
			At:         at(t, ts),
		})
		require.NoError(t, err)
	}

	month, year := 3, 2026
	results, err := svc.Query(context.Background(), attendance.QueryFilter{Month: &month, Year: &year})
	require.NoError(t, err)

	assert.Len(t, results, 2)
}

func TestQuery_NoFilterReturnsAll(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	for _, ts := range []string{"2026-01-05 09:00:00", "2026-03-02 09:00:00"} {
		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: emp.ID,
			At:         at(t, ts),
		})
		require.NoError(t, err)
	}

	results, err := svc.Query(context.Background(), attendance.QueryFilter{})
	require.NoError(t, err)

	assert.Len(t, results, 2)
}

func TestQuery_UnknownEmployeeCodeYieldsEmpty(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 09:00:00"),
	})
	require.NoError(t, err)

	code := "NOBODY999"
	results, err := svc.Query(context.Background(), attendance.QueryFilter{EmployeeCode: &code})
	require.NoError(t, err)

	assert.Empty(t, results)
}

func TestQuery_MonthWithoutYearRejected(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	month := 3
	_, err := svc.Query(context.Background(), attendance.QueryFilter{Month: &month})
	assert.Error(t, err)
}

func TestListExceptions_OnlyLateOrEarly(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	// Day 1: on time both ways. Day 2: late. Day 3: early leave.
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-02 09:00:00")})
	require.NoError(t, err)
	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: emp.ID, At: at(t, "2026-03-02 18:00:00")})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-03 09:30:00")})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-04 09:00:00")})
	require.NoError(t, err)
	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: emp.ID, At: at(t, "2026-03-04 16:00:00")})
	require.NoError(t, err)

	results, err := svc.ListExceptions(context.Background(), attendance.QueryFilter{})
	require.NoError(t, err)

	require.Len(t, results, 2)
	dates := []string{results[0].Date, results[1].Date}
	assert.ElementsMatch(t, []string{"2026-03-03", "2026-03-04"}, dates)
}

func TestBulkApprove_IgnoresUnknownIDs(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	first, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-02 09:00:00")})
	require.NoError(t, err)
	second, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-03 09:00:00")})
	require.NoError(t, err)

	approver := uuid.New().String()
	resp, err := svc.BulkApprove(context.Background(), attendance.BulkApproveRequest{
		AttendanceIDs: []string{first.ID, second.ID, uuid.New().String()},
	}, approver)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.ApprovedCount)
}

func TestBulkApprove_SetsApproverOnly(t *testing.T) {
	emp := testEmployee()
	svc, attRepo := newTestService(emp)

	rec, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: emp.ID, At: at(t, "2026-03-02 09:20:00")})
	require.NoError(t, err)

	approver := uuid.New().String()
	_, err = svc.BulkApprove(context.Background(), attendance.BulkApproveRequest{
		AttendanceIDs: []string{rec.ID},
	}, approver)
	require.NoError(t, err)

	stored := attRepo.records[rec.ID]
	assert.True(t, stored.Approved)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, approver, *stored.ApprovedBy)
	// Approval leaves the derived fields alone.
	require.NotNil(t, stored.CheckIn)
	assert.True(t, stored.CheckIn.Late)
	assert.Equal(t, 20, stored.CheckIn.LateMinutes)
}

func TestBulkApprove_EmptyIDsRejected(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	_, err := svc.BulkApprove(context.Background(), attendance.BulkApproveRequest{}, uuid.New().String())
	assert.Error(t, err)
}

func TestGetHistory_DefaultsToThirtyDays(t *testing.T) {
	emp := testEmployee()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, time.UTC)

	today := timeday.DayStart(time.Now(), time.UTC)
	for _, daysAgo := range []int{1, 10, 29, 45} {
		_, err := attRepo.Create(context.Background(), attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       today.AddDate(0, 0, -daysAgo),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	results, err := svc.GetHistory(context.Background(), emp.ID, 0)
	require.NoError(t, err)

	assert.Len(t, results, 3)
}

func TestGetToday_NilWhenAbsent(t *testing.T) {
	emp := testEmployee()
	svc, _ := newTestService(emp)

	resp, err := svc.GetToday(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestCustomSchedule(t *testing.T) {
	emp := testEmployee()
	emp.WorkStartTime = "07:30"
	emp.WorkEndTime = "16:30"
	svc, _ := newTestService(emp)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 07:45:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	assert.True(t, resp.CheckIn.Late)
	assert.Equal(t, 15, resp.CheckIn.LateMinutes)

	out, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: emp.ID,
		At:         at(t, "2026-03-02 16:30:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.CheckOut)
	assert.False(t, out.CheckOut.Early)
}

func TestTimezoneDayBoundary(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	emp := testEmployee()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, loc)

	// 23:30 UTC on March 1 is already 06:30 on March 2 in Jakarta.
	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.False(t, resp.CheckIn.Late)
}

func TestConcurrentDuplicateCheckInSurfacesStoreError(t *testing.T) {
	emp := testEmployee()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, time.UTC)

	// Simulate the race: another request inserts between our existence check
	// and our insert by pre-creating the row directly in the store.
	day := timeday.DayStart(at(t, "2026-03-02 00:00:00"), time.UTC)
	now := at(t, "2026-03-02 09:00:00")
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		CheckIn:    &attendance.CheckInDetail{Time: now, Location: "Office"},
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         now.Add(time.Second),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func ExampleAttendanceServiceImpl_CheckIn() {
	emp := testEmployee()
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emp)
	svc := NewAttendanceService(attRepo, empRepo, time.UTC)

	resp, _ := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: emp.ID,
		At:         time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC),
	})
	fmt.Println(resp.CheckIn.Late, resp.CheckIn.LateMinutes)
	// Output: true 15
}
