package report

import (
	"context"
	"io"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
)

// ReportService renders attendance query results for download. It is purely
// a presentation layer over the ledger's range queries: one row per record.
type ReportService interface {
	BuildAttendanceReport(ctx context.Context, filter attendance.QueryFilter) ([]Row, error)
	WriteCSV(w io.Writer, rows []Row) error
	WritePDF(w io.Writer, rows []Row) error
}

// Row is one formatted line of the attendance report.
type Row struct {
	EmployeeCode string
	Name         string
	Department   string
	Date         string // YYYY-MM-DD
	CheckIn      string // HH:MM:SS or "N/A"
	CheckOut     string // HH:MM:SS or "N/A"
	TotalHours   string // two decimal places
	Status       string
	Late         string // "15 min" or "No"
	Early        string // "10 min" or "No"
}
