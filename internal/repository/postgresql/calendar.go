package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/staffing-backend-go/internal/pkg/database"
)

type CalendarRepository interface {
	// WorkHours returns the total working hours in the inclusive date
	// range, accounting for rest days and days with non-standard hours.
	WorkHours(ctx context.Context, start, end time.Time) (float64, error)
}

type calendarRepositoryImpl struct {
	db *database.DB

	// Hours of a plain working day with no calendar mark.
	workDayHours float64
}

func NewCalendarRepository(db *database.DB, workDayHours float64) CalendarRepository {
	return &calendarRepositoryImpl{db: db, workDayHours: workDayHours}
}

func (r *calendarRepositoryImpl) WorkHours(ctx context.Context, start, end time.Time) (float64, error) {
	if end.Before(start) {
		start, end = end, start
	}

	// Marked days only; every unmarked day counts as a standard work day.
	query := `
		SELECT
			COUNT(*) FILTER (WHERE dt.hours = 0) AS rest_days,
			COUNT(*) FILTER (WHERE dt.hours > 0) AS uncommon_days,
			COALESCE(SUM(dt.hours) FILTER (WHERE dt.hours > 0), 0) AS uncommon_hours
		FROM days d
		JOIN day_types dt ON dt.id = d.day_type_id
		WHERE d.date >= $1 AND d.date <= $2
	`

	var restDays, uncommonDays int
	var uncommonHours float64

	err := r.db.QueryRow(ctx, query, start, end).Scan(&restDays, &uncommonDays, &uncommonHours)
	if err != nil {
		return 0, fmt.Errorf("failed to query work hours: %w", err)
	}

	daysTotal := int(end.Sub(start).Hours()/24) + 1
	workDays := daysTotal - restDays

	return float64(workDays-uncommonDays)*r.workDayHours + uncommonHours, nil
}
