package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/repository/postgresql"
)

// dataBuilder aggregates assignment and absence projections into flat
// report datasets for one [start, end] range. It holds no state between
// invocations; the service creates one per request.
type dataBuilder struct {
	schedule  postgresql.ScheduleRepository
	calendar  postgresql.CalendarRepository
	start     time.Time
	end       time.Time
	precision int32
}

func newDataBuilder(schedule postgresql.ScheduleRepository, calendar postgresql.CalendarRepository, start, end time.Time, precision int32) *dataBuilder {
	return &dataBuilder{
		schedule:  schedule,
		calendar:  calendar,
		start:     start,
		end:       end,
		precision: precision,
	}
}

func weekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func toAggregates(rows []report.AssignmentHoursRow) []aggregate {
	records := make([]aggregate, 0, len(rows))
	for _, row := range rows {
		records = append(records, aggregate{
			Employee:   row.Employee,
			Number:     row.Number,
			Department: row.Department,
			Position:   row.Position,
			Project:    row.Project,
			StaffUnits: row.StaffUnits,
			Hours:      row.Hours,
		})
	}
	return records
}

// assignmentRecords returns assignment hour records reconciled to the
// report range. Assignments are stored per whole week, so when the range
// starts or ends mid-week (month ranges do), the boundary week is queried
// separately and merged in scaled by the share of its work hours that fall
// inside the range.
func (b *dataBuilder) assignmentRecords(ctx context.Context, byProject bool) ([]aggregate, error) {
	rows, err := b.schedule.AssignmentHours(ctx, b.start, b.end)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment hours: %w", err)
	}

	records := toAggregates(rows)
	if !byProject {
		records = foldByNumber(records)
	}

	if b.start.Weekday() != time.Monday {
		records, err = b.mergeBoundaryWeek(ctx, records, byProject, weekStart(b.start), b.start, true)
		if err != nil {
			return nil, err
		}
	}

	if b.end.Weekday() != time.Sunday {
		records, err = b.mergeBoundaryWeek(ctx, records, byProject, weekStart(b.end), b.end, false)
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

// mergeBoundaryWeek folds one partial boundary week into records. The
// scale factor is the ratio of work hours inside the report range to work
// hours of the whole week, so only the in-range share of the week counts.
func (b *dataBuilder) mergeBoundaryWeek(ctx context.Context, records []aggregate, byProject bool, ws, boundary time.Time, head bool) ([]aggregate, error) {
	we := ws.AddDate(0, 0, 6)

	rows, err := b.schedule.AssignmentHours(ctx, ws, we)
	if err != nil {
		return nil, fmt.Errorf("failed to get boundary week hours: %w", err)
	}
	if len(rows) == 0 {
		return records, nil
	}

	week := toAggregates(rows)
	if !byProject {
		week = foldByNumber(week)
	}

	var inRange float64
	if head {
		inRange, err = b.calendar.WorkHours(ctx, boundary, we)
	} else {
		inRange, err = b.calendar.WorkHours(ctx, ws, boundary)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get boundary work hours: %w", err)
	}

	whole, err := b.calendar.WorkHours(ctx, ws, we)
	if err != nil {
		return nil, fmt.Errorf("failed to get week work hours: %w", err)
	}
	if whole <= 0 {
		// A week with no work hours contributes nothing.
		return records, nil
	}

	return mergeRecords(records, week, byProject, inRange/whole), nil
}

// absenceRecords returns per-employment absence hours reconciled to the
// report range. Absences are arbitrary day ranges; one that sticks out of
// the range is prorated by the ratio of work hours inside the overlap to
// work hours across its full range. Duplicate employment numbers fold
// into a single record.
func (b *dataBuilder) absenceRecords(ctx context.Context) ([]aggregate, error) {
	rows, err := b.schedule.Absences(ctx, b.start, b.end)
	if err != nil {
		return nil, fmt.Errorf("failed to get absences: %w", err)
	}

	records := make([]aggregate, 0, len(rows))
	for _, row := range rows {
		hours := row.Hours

		if row.Start.Before(b.start) || row.End.After(b.end) {
			within, err := b.calendar.WorkHours(ctx, maxTime(row.Start, b.start), minTime(row.End, b.end))
			if err != nil {
				return nil, fmt.Errorf("failed to get overlap work hours: %w", err)
			}
			across, err := b.calendar.WorkHours(ctx, row.Start, row.End)
			if err != nil {
				return nil, fmt.Errorf("failed to get absence work hours: %w", err)
			}
			if across <= 0 {
				hours = 0
			} else {
				hours = hours * within / across
			}
		}

		records = append(records, aggregate{
			Employee:     row.Employee,
			Number:       row.Number,
			Department:   row.Department,
			Position:     row.Position,
			StaffUnits:   row.StaffUnits,
			AbsenceHours: hours,
		})
	}

	return foldByNumber(records), nil
}

// assignmentReport builds the flat assignment listing: one row per
// employment and project, no extra math.
func (b *dataBuilder) assignmentReport(ctx context.Context) ([]report.AssignmentReportRow, error) {
	records, err := b.assignmentRecords(ctx, true)
	if err != nil {
		return nil, err
	}

	rows := make([]report.AssignmentReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.AssignmentReportRow{
			Employee:   rec.Employee,
			Number:     rec.Number,
			Department: rec.Department,
			Position:   rec.Position,
			Project:    rec.Project,
			Hours:      rec.Hours,
		})
	}
	return rows, nil
}

// assignmentMatrixReport builds employee-by-project hour rows, with
// absence hours appended as a synthetic project named absenceLabel.
func (b *dataBuilder) assignmentMatrixReport(ctx context.Context, absenceLabel string) ([]report.MatrixReportRow, error) {
	records, err := b.assignmentRecords(ctx, true)
	if err != nil {
		return nil, err
	}

	rows := make([]report.MatrixReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.MatrixReportRow{
			Employee: rec.Employee,
			Number:   rec.Number,
			Project:  rec.Project,
			Hours:    rec.Hours,
		})
	}

	absences, err := b.absenceRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range absences {
		rows = append(rows, report.MatrixReportRow{
			Employee: rec.Employee,
			Number:   rec.Number,
			Project:  absenceLabel,
			Hours:    rec.AbsenceHours,
		})
	}

	return rows, nil
}

// assignmentHoursCheck audits every employment: assigned plus absence
// hours against the calendar quota scaled by its staff units.
func (b *dataBuilder) assignmentHoursCheck(ctx context.Context) ([]report.HoursCheckRow, error) {
	quota, err := b.calendar.WorkHours(ctx, b.start, b.end)
	if err != nil {
		return nil, fmt.Errorf("failed to get work hour quota: %w", err)
	}

	records, err := b.assignmentRecords(ctx, false)
	if err != nil {
		return nil, err
	}

	absences, err := b.absenceRecords(ctx)
	if err != nil {
		return nil, err
	}

	merged := mergeRecords(records, absences, false, 1)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Employee < merged[j].Employee
	})

	rows := make([]report.HoursCheckRow, 0, len(merged))
	for _, rec := range merged {
		total := rec.Hours + rec.AbsenceHours
		workHours := quota * rec.StaffUnits

		difference := workHours - total
		if difference < 0 {
			difference = -difference
		}

		rows = append(rows, report.HoursCheckRow{
			Employee:      rec.Employee,
			Number:        rec.Number,
			Department:    rec.Department,
			Position:      rec.Position,
			StaffUnits:    rec.StaffUnits,
			AssignedHours: rec.Hours,
			AbsenceHours:  rec.AbsenceHours,
			HoursTotal:    total,
			WorkHours:     workHours,
			Difference:    difference,
		})
	}
	return rows, nil
}

// laborDistribution expresses every employment's project hours (and
// absence hours, as the absenceLabel project) as a share of the calendar
// work-hour quota. Shares are reconciled per employment so they sum
// exactly to the rounded employment total.
func (b *dataBuilder) laborDistribution(ctx context.Context, absenceLabel string) ([]report.DistributionRow, error) {
	quota, err := b.calendar.WorkHours(ctx, b.start, b.end)
	if err != nil {
		return nil, fmt.Errorf("failed to get work hour quota: %w", err)
	}

	records, err := b.assignmentRecords(ctx, true)
	if err != nil {
		return nil, err
	}

	absences, err := b.absenceRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range absences {
		records = append(records, aggregate{
			Employee:   rec.Employee,
			Number:     rec.Number,
			StaffUnits: rec.StaffUnits,
			Project:    absenceLabel,
			Hours:      rec.AbsenceHours,
		})
	}

	if len(records) == 0 {
		return []report.DistributionRow{}, nil
	}
	if quota <= 0 {
		return nil, fmt.Errorf("range %s to %s: %w",
			b.start.Format("2006-01-02"), b.end.Format("2006-01-02"), report.ErrNoWorkHours)
	}

	for i := range records {
		records[i].Hours /= quota
	}

	rows := make([]report.DistributionRow, len(records))
	for _, group := range groupByNumber(records) {
		sum := 0.0
		shares := make([]float64, 0, len(group))
		for _, idx := range group {
			sum += records[idx].Hours
			shares = append(shares, records[idx].Hours)
		}

		total := roundValue(sum, b.precision)
		rounded, err := roundToSum(shares, total, b.precision)
		if err != nil {
			return nil, err
		}

		for i, idx := range group {
			rec := records[idx]
			rows[idx] = report.DistributionRow{
				Employee:   rec.Employee,
				Number:     rec.Number,
				StaffUnits: rec.StaffUnits,
				Project:    rec.Project,
				Index:      rounded[i],
				Total:      total,
			}
		}
	}
	return rows, nil
}

// laborDistributionPerProject expresses every employment's project hours
// as a share of that employment's own assigned total, reconciled so each
// employment's shares sum exactly to 1.
func (b *dataBuilder) laborDistributionPerProject(ctx context.Context) ([]report.ProjectDistributionRow, error) {
	records, err := b.assignmentRecords(ctx, true)
	if err != nil {
		return nil, err
	}

	rows := make([]report.ProjectDistributionRow, 0, len(records))
	for _, group := range groupByNumber(records) {
		total := 0.0
		for _, idx := range group {
			total += records[idx].Hours
		}
		if total <= 0 {
			continue
		}

		shares := make([]float64, 0, len(group))
		for _, idx := range group {
			shares = append(shares, records[idx].Hours/total)
		}

		rounded, err := roundToSum(shares, 1, b.precision)
		if err != nil {
			return nil, err
		}

		for i, idx := range group {
			rec := records[idx]
			rows = append(rows, report.ProjectDistributionRow{
				Employee: rec.Employee,
				Number:   rec.Number,
				Project:  rec.Project,
				Index:    rounded[i],
			})
		}
	}
	return rows, nil
}

// groupByNumber returns record indexes grouped by employment number, in
// order of first appearance.
func groupByNumber(records []aggregate) [][]int {
	var groups [][]int
	position := make(map[string]int)
	for i, rec := range records {
		if at, ok := position[rec.Number]; ok {
			groups[at] = append(groups[at], i)
			continue
		}
		position[rec.Number] = len(groups)
		groups = append(groups, []int{i})
	}
	return groups
}
