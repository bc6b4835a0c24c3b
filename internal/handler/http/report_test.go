package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/pkg/validator"
)

// stubReportService returns canned results so handler behavior can be
// tested without the aggregation pipeline.
type stubReportService struct {
	doc       report.Document
	workHours report.WorkHoursResult
	err       error

	lastDownload report.DownloadRequest
}

func (s *stubReportService) Generate(_ context.Context, req report.DownloadRequest) (report.Document, error) {
	s.lastDownload = req
	if s.err != nil {
		return report.Document{}, s.err
	}
	return s.doc, nil
}

func (s *stubReportService) WorkHours(_ context.Context, _ report.WorkHoursRequest) (report.WorkHoursResult, error) {
	if s.err != nil {
		return report.WorkHoursResult{}, s.err
	}
	return s.workHours, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestListReports(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	handler.ListReports(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 6)
}

func TestDownloadReport(t *testing.T) {
	stub := &stubReportService{
		doc: report.Document{Format: report.DocumentXLSX, Content: []byte("workbook-bytes")},
	}
	handler := NewReportHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/download?report=assignment_hours_check_xlsx&start=2026-01-05&end=2026-01-11", nil)
	handler.DownloadReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="report_2026-01-05_2026-01-11.xlsx"`,
		rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "workbook-bytes", rec.Body.String())

	// Orientation defaults to portrait when not supplied.
	assert.Equal(t, report.OrientationPortrait, stub.lastDownload.Orientation)
	assert.Equal(t, report.KindHoursCheckXLSX, stub.lastDownload.Report)
}

func TestDownloadReportValidationError(t *testing.T) {
	stub := &stubReportService{
		err: validator.ValidationErrors{{Field: "start", Message: "start must be a Monday or the first day of a month"}},
	}
	handler := NewReportHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/download?report=assignment_report", nil)
	handler.DownloadReport(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestDownloadReportNoWorkHours(t *testing.T) {
	handler := NewReportHandler(&stubReportService{err: report.ErrNoWorkHours})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/download?report=index_of_labor_distribution_xlsx", nil)
	handler.DownloadReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadReportUnexpectedError(t *testing.T) {
	handler := NewReportHandler(&stubReportService{err: report.ErrInconsistentTotals})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/download?report=assignment_report", nil)
	handler.DownloadReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetWorkHours(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		workHours: report.WorkHoursResult{Start: "2026-01-05", End: "2026-01-11", WorkHours: 40},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/work-hours?start=2026-01-05&end=2026-01-11", nil)
	handler.GetWorkHours(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 40.0, data["work_hours"])
}

func TestRouterRoutes(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})
	router := NewRouter("test", "http://localhost:3000", handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code) // heartbeat
}
