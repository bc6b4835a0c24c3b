package report

import "context"

// Service defines the interface for report generation
type Service interface {
	// Generate builds, renders and returns one report document
	Generate(ctx context.Context, req DownloadRequest) (Document, error)

	// WorkHours returns the work-hour quota for a date range
	WorkHours(ctx context.Context, req WorkHoursRequest) (WorkHoursResult, error)
}
