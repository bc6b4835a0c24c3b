package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/pkg/validator"
)

func testService() report.Service {
	schedule := &fakeSchedule{
		assignments: map[string][]report.AssignmentHoursRow{
			rangeKey(date("2026-01-05"), date("2026-01-11")): {
				{Employee: "Ann Lee", Number: "001", StaffUnits: 1, Project: "Alpha", Hours: 40},
			},
		},
	}
	return NewReportService(schedule, fakeCalendar{}, 2, "Absence hours")
}

func TestGenerateRendersEveryKind(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	formats := map[report.Kind]report.DocumentFormat{
		report.KindAssignment:                  report.DocumentDOCX,
		report.KindAssignmentMatrix:            report.DocumentDOCX,
		report.KindAssignmentMatrixXLSX:        report.DocumentXLSX,
		report.KindHoursCheckXLSX:              report.DocumentXLSX,
		report.KindLaborDistributionXLSX:       report.DocumentXLSX,
		report.KindLaborDistributionPerProject: report.DocumentXLSX,
	}

	for kind, format := range formats {
		doc, err := svc.Generate(ctx, report.DownloadRequest{
			Report:      kind,
			Start:       "2026-01-05",
			End:         "2026-01-11",
			Orientation: report.OrientationPortrait,
		})
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, format, doc.Format, "kind %s", kind)
		assert.NotEmpty(t, doc.Content, "kind %s", kind)
	}
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	svc := testService()

	_, err := svc.Generate(context.Background(), report.DownloadRequest{
		Report:      report.KindAssignment,
		Start:       "2026-01-06", // Tuesday
		End:         "2026-01-11",
		Orientation: report.OrientationPortrait,
	})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "start")
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	svc := testService()

	_, err := svc.Generate(context.Background(), report.DownloadRequest{
		Report:      "quarterly_totals",
		Start:       "2026-01-05",
		End:         "2026-01-11",
		Orientation: report.OrientationPortrait,
	})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "report")
}

func TestWorkHours(t *testing.T) {
	svc := testService()

	result, err := svc.WorkHours(context.Background(), report.WorkHoursRequest{
		Start: "2026-01-05",
		End:   "2026-01-11",
	})
	require.NoError(t, err)

	assert.Equal(t, 56.0, result.WorkHours)
	assert.Equal(t, "2026-01-05", result.Start)
}

func TestWorkHoursRejectsInvalidRange(t *testing.T) {
	svc := testService()

	_, err := svc.WorkHours(context.Background(), report.WorkHoursRequest{
		Start: "2026-01-11",
		End:   "2026-01-05",
	})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
}
