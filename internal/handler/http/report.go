package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/worktrack/attendance-backend-go/internal/domain/report"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportCSV implements ReportHandler. Same filters as the admin attendance
// listing; the response streams as a file download.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseQueryFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reportService.BuildAttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.reportService.WriteCSV(w, rows); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("Failed to write csv report", "error", err)
	}
}

// ExportPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseQueryFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reportService.BuildAttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%s.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.reportService.WritePDF(w, rows); err != nil {
		slog.Error("Failed to write pdf report", "error", err)
	}
}
