package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/staffing-backend-go/internal/pkg/validator"
)

func validRequest() DownloadRequest {
	return DownloadRequest{
		Report:      KindAssignment,
		Start:       "2026-01-05",
		End:         "2026-01-11",
		Orientation: OrientationPortrait,
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs), "expected validation errors, got %v", err)
	return errs.ToMap()
}

func TestDownloadRequestValidateWeekRange(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestDownloadRequestValidateMonthRange(t *testing.T) {
	req := validRequest()
	req.Start = "2026-07-01"
	req.End = "2026-07-31"
	assert.NoError(t, req.Validate())
}

func TestDownloadRequestValidateMultiWeekRange(t *testing.T) {
	req := validRequest()
	req.Start = "2026-01-05"
	req.End = "2026-01-25" // three whole weeks
	assert.NoError(t, req.Validate())
}

func TestDownloadRequestRejectsUnknownKind(t *testing.T) {
	req := validRequest()
	req.Report = "quarterly_totals"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "report")
}

func TestDownloadRequestRejectsBadOrientation(t *testing.T) {
	req := validRequest()
	req.Orientation = "diagonal"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "orientation")
}

func TestDownloadRequestRejectsBadDates(t *testing.T) {
	req := validRequest()
	req.Start = "05.01.2026"
	req.End = "2026-13-40"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "start")
	assert.Contains(t, fields, "end")
}

func TestDownloadRequestRejectsMidWeekStart(t *testing.T) {
	req := validRequest()
	req.Start = "2026-01-06" // Tuesday, not the 1st

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "start")
}

func TestDownloadRequestRejectsMidWeekEnd(t *testing.T) {
	req := validRequest()
	req.End = "2026-01-09" // Friday, not month end

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "end")
}

func TestDownloadRequestRejectsReversedRange(t *testing.T) {
	req := validRequest()
	req.Start = "2026-01-12"
	req.End = "2026-01-11"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "start")
}

func TestDownloadRequestRejectsMixedRange(t *testing.T) {
	// Starts a month but ends on a Sunday that is not the month's last
	// day: neither whole weeks nor a whole month.
	req := validRequest()
	req.Start = "2026-07-01"
	req.End = "2026-07-26"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "end")
}

func TestDownloadRequestRange(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	start, end := req.Range()
	assert.Equal(t, "2026-01-05", start.Format("2006-01-02"))
	assert.Equal(t, "2026-01-11", end.Format("2006-01-02"))
}

func TestCatalogListsEveryKind(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 6)

	kinds := make(map[Kind]string, len(entries))
	for _, entry := range entries {
		kinds[entry.Report] = entry.Format
	}

	assert.Equal(t, "docx", kinds[KindAssignment])
	assert.Equal(t, "docx", kinds[KindAssignmentMatrix])
	assert.Equal(t, "xlsx", kinds[KindAssignmentMatrixXLSX])
	assert.Equal(t, "xlsx", kinds[KindHoursCheckXLSX])
	assert.Equal(t, "xlsx", kinds[KindLaborDistributionXLSX])
	assert.Equal(t, "xlsx", kinds[KindLaborDistributionPerProject])
}

func TestWorkHoursRequestValidate(t *testing.T) {
	req := WorkHoursRequest{Start: "2026-01-05", End: "2026-01-09"}
	assert.NoError(t, req.Validate())

	req = WorkHoursRequest{Start: "2026-01-09", End: "2026-01-05"}
	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "start")

	req = WorkHoursRequest{Start: "bad", End: "2026-01-05"}
	fields = validationFields(t, req.Validate())
	assert.Contains(t, fields, "start")
}
