package http

import (
	"fmt"
	"net/http"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Report catalog
	ListReports(w http.ResponseWriter, r *http.Request)

	// Rendered report download
	DownloadReport(w http.ResponseWriter, r *http.Request)

	// Calendar work-hour quota
	GetWorkHours(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ListReports handles GET /reports
func (h *reportHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	response.Success(w, report.Catalog())
}

// DownloadReport handles GET /reports/download
func (h *reportHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters
	orientation := r.URL.Query().Get("orientation")
	if orientation == "" {
		orientation = report.OrientationPortrait
	}

	req := report.DownloadRequest{
		Report:      report.Kind(r.URL.Query().Get("report")),
		Start:       r.URL.Query().Get("start"),
		End:         r.URL.Query().Get("end"),
		Orientation: orientation,
	}

	doc, err := h.reportService.Generate(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contentType, err := doc.ContentType()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filename, err := doc.Filename(req.Start, req.End)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}

// GetWorkHours handles GET /calendar/work-hours
func (h *reportHandlerImpl) GetWorkHours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.WorkHoursRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	result, err := h.reportService.WorkHours(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
