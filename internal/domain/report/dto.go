package report

import (
	"time"

	"github.com/stafftrack/staffing-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT CATALOG
// ========================================

type Kind string

const (
	KindAssignment                  Kind = "assignment_report"
	KindAssignmentMatrix            Kind = "assignment_matrix_report"
	KindAssignmentMatrixXLSX        Kind = "assignment_matrix_report_xlsx"
	KindHoursCheckXLSX              Kind = "assignment_hours_check_xlsx"
	KindLaborDistributionXLSX       Kind = "index_of_labor_distribution_xlsx"
	KindLaborDistributionPerProject Kind = "index_of_labor_distribution_per_project_xlsx"
)

type CatalogEntry struct {
	Report Kind   `json:"report"`
	Label  string `json:"label"`
	Format string `json:"format"`
}

// Catalog lists every report kind the engine can produce, in the order the
// download form presents them.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{KindAssignment, "Employees' assignments", "docx"},
		{KindAssignmentMatrix, "Employees' assignments matrix", "docx"},
		{KindAssignmentMatrixXLSX, "Employees' assignments matrix (Excel)", "xlsx"},
		{KindHoursCheckXLSX, "Employees' work hours check", "xlsx"},
		{KindLaborDistributionXLSX, "Employees' indexes of labor distribution", "xlsx"},
		{KindLaborDistributionPerProject, "Employees' indexes of labor distribution per project", "xlsx"},
	}
}

// ========================================
// DOWNLOAD REQUEST
// ========================================

const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

type DownloadRequest struct {
	Report      Kind   `json:"report"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Orientation string `json:"orientation"`
}

func (r *DownloadRequest) Validate() error {
	var errs validator.ValidationErrors

	known := false
	for _, entry := range Catalog() {
		if entry.Report == r.Report {
			known = true
			break
		}
	}
	if !known {
		errs = append(errs, validator.ValidationError{
			Field:   "report",
			Message: "unknown report kind",
		})
	}

	if r.Orientation != OrientationPortrait && r.Orientation != OrientationLandscape {
		errs = append(errs, validator.ValidationError{
			Field:   "orientation",
			Message: "orientation must be portrait or landscape",
		})
	}

	start, startOK := validator.IsValidDate(r.Start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.End)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if startOK && !validator.IsMonday(start) && !validator.IsFirstOfMonth(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a Monday or the first day of a month",
		})
	}

	if endOK && !validator.IsSunday(end) && !validator.IsLastOfMonth(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a Sunday or the last day of a month",
		})
	}

	if startOK && endOK && len(errs) == 0 {
		if start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be before or equal to end",
			})
		} else {
			weekRange := validator.IsMonday(start) && validator.IsSunday(end)
			monthRange := validator.IsFirstOfMonth(start) && validator.IsLastOfMonth(end)
			if !weekRange && !monthRange {
				errs = append(errs, validator.ValidationError{
					Field:   "end",
					Message: "report range must be whole weeks or whole months",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed report period. Validate must have passed.
func (r *DownloadRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.Start)
	end, _ := validator.IsValidDate(r.End)
	return start, end
}

// ========================================
// PROJECTION ROWS (query interface output)
// ========================================

// AssignmentHoursRow is one (employment, project) hour total for
// assignments lying entirely inside a queried date range.
type AssignmentHoursRow struct {
	Employee   string
	Number     string
	Department string
	Position   string
	StaffUnits float64
	Project    string
	Hours      float64
}

// AbsenceRow is one absence overlapping a queried date range, carrying its
// own full range so boundary proration can be computed against it.
type AbsenceRow struct {
	Employee   string
	Number     string
	Department string
	Position   string
	StaffUnits float64
	Start      time.Time
	End        time.Time
	Hours      float64
}

// ========================================
// REPORT ROWS (aggregator output)
// ========================================

type AssignmentReportRow struct {
	Employee   string  `json:"employee"`
	Number     string  `json:"number"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Project    string  `json:"project"`
	Hours      float64 `json:"hours"`
}

type MatrixReportRow struct {
	Employee string  `json:"employee"`
	Number   string  `json:"number"`
	Project  string  `json:"project"`
	Hours    float64 `json:"hours"`
}

type HoursCheckRow struct {
	Employee      string  `json:"employee"`
	Number        string  `json:"number"`
	Department    string  `json:"department"`
	Position      string  `json:"position"`
	StaffUnits    float64 `json:"staff_units"`
	AssignedHours float64 `json:"assigned_hours"`
	AbsenceHours  float64 `json:"absence_hours"`
	HoursTotal    float64 `json:"hours_total"`
	WorkHours     float64 `json:"work_hours"`
	Difference    float64 `json:"difference"`
}

type DistributionRow struct {
	Employee   string  `json:"employee"`
	Number     string  `json:"number"`
	StaffUnits float64 `json:"staff_units"`
	Project    string  `json:"project"`
	Index      float64 `json:"index"`
	Total      float64 `json:"total"`
}

type ProjectDistributionRow struct {
	Employee string  `json:"employee"`
	Number   string  `json:"number"`
	Project  string  `json:"project"`
	Index    float64 `json:"index"`
}

// ========================================
// WORK-HOUR QUOTA
// ========================================

type WorkHoursRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *WorkHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.Start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.End)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be before or equal to end",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *WorkHoursRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.Start)
	end, _ := validator.IsValidDate(r.End)
	return start, end
}

type WorkHoursResult struct {
	Start     string  `json:"start"`
	End       string  `json:"end"`
	WorkHours float64 `json:"work_hours"`
}
