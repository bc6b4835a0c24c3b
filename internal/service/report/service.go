package report

import (
	"context"
	"fmt"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/repository/postgresql"
)

type ReportServiceImpl struct {
	schedule postgresql.ScheduleRepository
	calendar postgresql.CalendarRepository

	precision    int32
	absenceLabel string
}

func NewReportService(schedule postgresql.ScheduleRepository, calendar postgresql.CalendarRepository, precision int32, absenceLabel string) report.Service {
	return &ReportServiceImpl{
		schedule:     schedule,
		calendar:     calendar,
		precision:    precision,
		absenceLabel: absenceLabel,
	}
}

// Generate validates the request, aggregates the report dataset for the
// requested range and renders it into a downloadable document.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.DownloadRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	start, end := req.Range()
	builder := newDataBuilder(s.schedule, s.calendar, start, end, s.precision)
	layout := page{
		start:     start,
		end:       end,
		landscape: req.Orientation == report.OrientationLandscape,
	}

	switch req.Report {
	case report.KindAssignment:
		rows, err := builder.assignmentReport(ctx)
		if err != nil {
			return report.Document{}, err
		}
		return renderAssignmentDOCX(rows, layout)

	case report.KindAssignmentMatrix:
		rows, err := builder.assignmentMatrixReport(ctx, s.absenceLabel)
		if err != nil {
			return report.Document{}, err
		}
		return renderMatrixDOCX(rows, s.absenceLabel, layout)

	case report.KindAssignmentMatrixXLSX:
		rows, err := builder.assignmentMatrixReport(ctx, s.absenceLabel)
		if err != nil {
			return report.Document{}, err
		}
		return renderMatrixXLSX(rows, s.absenceLabel, layout)

	case report.KindHoursCheckXLSX:
		rows, err := builder.assignmentHoursCheck(ctx)
		if err != nil {
			return report.Document{}, err
		}
		return renderHoursCheckXLSX(rows, layout)

	case report.KindLaborDistributionXLSX:
		rows, err := builder.laborDistribution(ctx, s.absenceLabel)
		if err != nil {
			return report.Document{}, err
		}
		return renderDistributionXLSX(rows, layout)

	case report.KindLaborDistributionPerProject:
		rows, err := builder.laborDistributionPerProject(ctx)
		if err != nil {
			return report.Document{}, err
		}
		return renderProjectDistributionXLSX(rows, layout)

	default:
		return report.Document{}, fmt.Errorf("%w: %q", report.ErrUnknownReport, req.Report)
	}
}

// WorkHours returns the calendar work-hour quota for an arbitrary date
// range.
func (s *ReportServiceImpl) WorkHours(ctx context.Context, req report.WorkHoursRequest) (report.WorkHoursResult, error) {
	if err := req.Validate(); err != nil {
		return report.WorkHoursResult{}, err
	}

	start, end := req.Range()
	hours, err := s.calendar.WorkHours(ctx, start, end)
	if err != nil {
		return report.WorkHoursResult{}, fmt.Errorf("failed to get work hours: %w", err)
	}

	return report.WorkHoursResult{
		Start:     req.Start,
		End:       req.End,
		WorkHours: hours,
	}, nil
}
