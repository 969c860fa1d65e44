package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportService(attendanceService attendance.AttendanceService) report.ReportService {
	return &ReportServiceImpl{attendanceService: attendanceService}
}

// BuildAttendanceReport implements report.ReportService. It runs the same
// range query the admin listing uses and formats one row per record.
func (s *ReportServiceImpl) BuildAttendanceReport(ctx context.Context, filter attendance.QueryFilter) ([]report.Row, error) {
	records, err := s.attendanceService.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]report.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toRow(rec))
	}
	return rows, nil
}

func toRow(rec attendance.AttendanceResponse) report.Row {
	row := report.Row{
		EmployeeCode: strOrEmpty(rec.EmployeeCode),
		Name:         strOrEmpty(rec.EmployeeName),
		Department:   strOrEmpty(rec.EmployeeDepartment),
		Date:         rec.Date,
		CheckIn:      "N/A",
		CheckOut:     "N/A",
		TotalHours:   fmt.Sprintf("%.2f", rec.TotalHours),
		Status:       rec.Status,
		Late:         "No",
		Early:        "No",
	}
	if rec.CheckIn != nil {
		row.CheckIn = timePart(rec.CheckIn.Time)
		if rec.CheckIn.Late {
			row.Late = fmt.Sprintf("%d min", rec.CheckIn.LateMinutes)
		}
	}
	if rec.CheckOut != nil {
		row.CheckOut = timePart(rec.CheckOut.Time)
		if rec.CheckOut.Early {
			row.Early = fmt.Sprintf("%d min", rec.CheckOut.EarlyMinutes)
		}
	}
	return row
}

// timePart extracts HH:MM:SS from the API timestamp format.
func timePart(value string) string {
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return value
	}
	return parsed.Format("15:04:05")
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var csvHeader = []string{
	"Employee Code", "Name", "Department", "Date",
	"Check In", "Check Out", "Total Hours", "Status", "Late", "Early Leave",
}

// WriteCSV implements report.ReportService.
func (s *ReportServiceImpl) WriteCSV(w io.Writer, rows []report.Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeCode, row.Name, row.Department, row.Date,
			row.CheckIn, row.CheckOut, row.TotalHours, row.Status, row.Late, row.Early,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WritePDF implements report.ReportService.
func (s *ReportServiceImpl) WritePDF(w io.Writer, rows []report.Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Attendance Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	for i, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s - %s (%s)", i+1, row.EmployeeCode, row.Name, row.Date), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("   Check In: %s  |  Check Out: %s  |  Total Hours: %s", row.CheckIn, row.CheckOut, row.TotalHours), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("   Status: %s  |  Late: %s  |  Early Leave: %s", row.Status, row.Late, row.Early), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	if len(rows) == 0 {
		pdf.CellFormat(0, 6, "No attendance records found.", "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
