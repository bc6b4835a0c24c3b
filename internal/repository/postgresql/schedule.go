package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/pkg/database"
)

type ScheduleRepository interface {
	// AssignmentHours returns per-(employment, project) hour totals for
	// assignments lying entirely inside [start, end].
	AssignmentHours(ctx context.Context, start, end time.Time) ([]report.AssignmentHoursRow, error)

	// Absences returns absences overlapping [start, end], each with its
	// own full date range.
	Absences(ctx context.Context, start, end time.Time) ([]report.AbsenceRow, error)
}

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func (r *scheduleRepositoryImpl) AssignmentHours(ctx context.Context, start, end time.Time) ([]report.AssignmentHoursRow, error) {
	query := `
		SELECT
			concat_ws(' ', e.last_name, e.first_name, e.middle_name) AS employee,
			em.number,
			d.name AS department,
			pos.name AS position,
			em.count AS staff_units,
			p.name AS project,
			COALESCE(SUM(pa.hours), 0) AS hours
		FROM assignments a
		JOIN employments em ON em.id = a.employment_id
		JOIN employees e ON e.id = em.employee_id
		JOIN staffings s ON s.id = em.staffing_id
		JOIN departments d ON d.id = s.department_id
		JOIN positions pos ON pos.id = s.position_id
		JOIN project_assignments pa ON pa.assignment_id = a.id
		JOIN projects p ON p.id = pa.project_id
		WHERE a.start_date >= $1 AND a.end_date <= $2
		GROUP BY employee, em.number, d.name, pos.name, em.count, p.name
		ORDER BY employee ASC, p.name ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment hours: %w", err)
	}
	defer rows.Close()

	var result []report.AssignmentHoursRow

	for rows.Next() {
		var row report.AssignmentHoursRow

		err := rows.Scan(
			&row.Employee,
			&row.Number,
			&row.Department,
			&row.Position,
			&row.StaffUnits,
			&row.Project,
			&row.Hours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment hours row: %w", err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *scheduleRepositoryImpl) Absences(ctx context.Context, start, end time.Time) ([]report.AbsenceRow, error) {
	query := `
		SELECT
			concat_ws(' ', e.last_name, e.first_name, e.middle_name) AS employee,
			em.number,
			d.name AS department,
			pos.name AS position,
			em.count AS staff_units,
			ab.start_date,
			ab.end_date,
			ab.hours
		FROM absences ab
		JOIN employments em ON em.id = ab.employment_id
		JOIN employees e ON e.id = em.employee_id
		JOIN staffings s ON s.id = em.staffing_id
		JOIN departments d ON d.id = s.department_id
		JOIN positions pos ON pos.id = s.position_id
		WHERE ab.start_date <= $2 AND ab.end_date >= $1
		ORDER BY employee ASC, ab.start_date ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var result []report.AbsenceRow

	for rows.Next() {
		var row report.AbsenceRow
		var absStart, absEnd time.Time

		err := rows.Scan(
			&row.Employee,
			&row.Number,
			&row.Department,
			&row.Position,
			&row.StaffUnits,
			&absStart,
			&absEnd,
			&row.Hours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence row: %w", err)
		}

		row.Start = absStart
		row.End = absEnd
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
