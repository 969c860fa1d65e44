package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListExceptions(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler. The body is optional; it may carry a
// location override.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// GetToday implements AttendanceHandler. Data is null when the employee has
// no record for the current day.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHistory implements AttendanceHandler. Accepts ?days=N, defaulting to a
// 30-day window.
func (h *attendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "days must be a positive integer", nil)
			return
		}
		days = parsed
	}

	result, err := h.attendanceService.GetHistory(r.Context(), employeeID, days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler. Admin listing across employees, filtered
// by ?date=YYYY-MM-DD or ?month=&year=, optionally ?employee_code=.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseQueryFilter(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Query(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListExceptions implements AttendanceHandler. Same filters as List, but only
// records flagged late or early-leave.
func (h *attendanceHandlerImpl) ListExceptions(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseQueryFilter(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ListExceptions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkApprove implements AttendanceHandler.
func (h *attendanceHandlerImpl) BulkApprove(w http.ResponseWriter, r *http.Request) {
	approverID, err := middleware.EmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.BulkApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.BulkApprove(r.Context(), req, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendances approved", result)
}

// parseQueryFilter reads the shared day-or-month query parameters. It writes
// the error response itself and reports ok=false when the input is malformed.
func parseQueryFilter(w http.ResponseWriter, r *http.Request) (attendance.QueryFilter, bool) {
	var filter attendance.QueryFilter
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		filter.Date = &date
	}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "month must be an integer", nil)
			return attendance.QueryFilter{}, false
		}
		filter.Month = &month
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return attendance.QueryFilter{}, false
		}
		filter.Year = &year
	}
	if code := q.Get("employee_code"); code != "" {
		filter.EmployeeCode = &code
	}

	return filter, true
}
