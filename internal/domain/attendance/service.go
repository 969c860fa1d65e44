package attendance

import "context"

// AttendanceService owns the per-day record creation and mutation rules:
// first check-in of a day creates the record, the same day's check-out
// mutates it, lateness/earliness and total hours are derived values.
// Callers are authenticated upstream; the service trusts the employee and
// approver ids it is given.
type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetToday returns nil when the employee has no record for the current day.
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// GetHistory returns the employee's records over a rolling window of
	// sinceDaysAgo days anchored at now, newest first.
	GetHistory(ctx context.Context, employeeID string, sinceDaysAgo int) ([]AttendanceResponse, error)

	// Query lists records for a day or a month. An employee-code filter that
	// matches no employee yields an empty result, not an error.
	Query(ctx context.Context, filter QueryFilter) ([]AttendanceResponse, error)

	// ListExceptions is Query restricted to records flagged late or early.
	ListExceptions(ctx context.Context, filter QueryFilter) ([]AttendanceResponse, error)

	// BulkApprove approves the given records on behalf of approverID and
	// returns how many were actually updated.
	BulkApprove(ctx context.Context, req BulkApproveRequest, approverID string) (BulkApproveResponse, error)
}
