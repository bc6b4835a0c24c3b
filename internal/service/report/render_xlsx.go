package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
)

const emptyText = "There are no records available"

// page carries the layout parameters shared by every renderer.
type page struct {
	start     time.Time
	end       time.Time
	landscape bool
}

func (p page) subtitle() string {
	return fmt.Sprintf("From %s to %s:", p.start.Format("02.01.2006"), p.end.Format("02.01.2006"))
}

// sheetWriter wraps one worksheet and tracks content widths so columns can
// be auto-sized the way the source reports were.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	widths map[int]int
	cols   int
	rows   int
}

func newWorkbook(title string, landscape bool) (*sheetWriter, error) {
	f := excelize.NewFile()

	sheet := title
	if len(sheet) > 31 {
		// Worksheet name length limit.
		sheet = sheet[:31]
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	size := 9 // A4
	orientation := "portrait"
	if landscape {
		orientation = "landscape"
	}
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set page layout: %w", err)
	}

	return &sheetWriter{f: f, sheet: sheet, widths: make(map[int]int)}, nil
}

func (w *sheetWriter) set(col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	if length := len(fmt.Sprint(value)); length > w.widths[col] {
		w.widths[col] = length
	}
	if col > w.cols {
		w.cols = col
	}
	if row > w.rows {
		w.rows = row
	}
	return nil
}

func (w *sheetWriter) autoSize() error {
	for col := 1; col <= w.cols; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(w.sheet, name, name, float64(w.widths[col]+3)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}

// decorate borders the populated grid, centers the listed columns and
// makes the header row bold. Call after all data cells are written.
func (w *sheetWriter) decorate(centered []int) error {
	border, err := w.f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("failed to create border style: %w", err)
	}
	center, err := w.f.NewStyle(&excelize.Style{
		Border: thinBorders(),
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create centered style: %w", err)
	}
	header, err := w.f.NewStyle(&excelize.Style{
		Border: thinBorders(),
		Font:   &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(w.cols, w.rows)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, "A1", last, border); err != nil {
		return fmt.Errorf("failed to apply borders: %w", err)
	}

	for _, col := range centered {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, w.rows)
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(w.sheet, top, bottom, center); err != nil {
			return fmt.Errorf("failed to center column: %w", err)
		}
	}

	headerLast, err := excelize.CoordinatesToCellName(w.cols, 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, "A1", headerLast, header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

// titleBlockHeight rows are inserted above the data once the table is
// complete, shifting everything down.
const titleBlockHeight = 4

func (w *sheetWriter) addTitleBlock(title string, p page, width int) error {
	if err := w.f.InsertRows(w.sheet, 1, titleBlockHeight); err != nil {
		return fmt.Errorf("failed to insert title rows: %w", err)
	}

	for row := 1; row <= titleBlockHeight; row++ {
		from, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(width, row)
		if err != nil {
			return err
		}
		if err := w.f.MergeCell(w.sheet, from, to); err != nil {
			return fmt.Errorf("failed to merge title cells: %w", err)
		}
	}

	titleStyle, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true, Size: 12},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	if err := w.f.SetCellValue(w.sheet, "A1", title); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, "A3", p.subtitle()); err != nil {
		return err
	}

	w.rows += titleBlockHeight
	return nil
}

func (w *sheetWriter) addPlaceholder(width int) error {
	row := titleBlockHeight + 1
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	if err := w.f.MergeCell(w.sheet, from, to); err != nil {
		return err
	}
	return w.f.SetCellValue(w.sheet, from, emptyText)
}

func (w *sheetWriter) document() (report.Document, error) {
	var buf bytes.Buffer
	if _, err := w.f.WriteTo(&buf); err != nil {
		w.f.Close()
		return report.Document{}, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return report.Document{}, fmt.Errorf("failed to close workbook: %w", err)
	}
	return report.Document{Format: report.DocumentXLSX, Content: buf.Bytes()}, nil
}

// matrixLabels derives the sorted employee labels and the header for the
// matrix layouts. The absence column always comes last.
func matrixLabels(rows []report.MatrixReportRow, absenceLabel string) ([]string, []string) {
	employeeSet := make(map[string]struct{})
	projectSet := make(map[string]struct{})
	for _, row := range rows {
		employeeSet[fmt.Sprintf("%s [%s]", row.Employee, row.Number)] = struct{}{}
		if row.Project != absenceLabel {
			projectSet[row.Project] = struct{}{}
		}
	}

	employees := make([]string, 0, len(employeeSet))
	for label := range employeeSet {
		employees = append(employees, label)
	}
	sort.Strings(employees)

	header := make([]string, 0, len(projectSet)+2)
	header = append(header, "Employees")
	projects := make([]string, 0, len(projectSet))
	for name := range projectSet {
		projects = append(projects, name)
	}
	sort.Strings(projects)
	header = append(header, projects...)
	header = append(header, absenceLabel)

	return employees, header
}

func renderMatrixXLSX(rows []report.MatrixReportRow, absenceLabel string, p page) (report.Document, error) {
	const title = "Employees' assignments matrix"

	w, err := newWorkbook(title, p.landscape)
	if err != nil {
		return report.Document{}, err
	}

	if len(rows) == 0 {
		if err := w.addTitleBlock(title, p, 9); err != nil {
			return report.Document{}, err
		}
		if err := w.addPlaceholder(9); err != nil {
			return report.Document{}, err
		}
		return w.document()
	}

	employees, header := matrixLabels(rows, absenceLabel)
	totalCol := len(header) + 1

	for col, value := range header {
		if err := w.set(col+1, 1, value); err != nil {
			return report.Document{}, err
		}
	}
	if err := w.set(totalCol, 1, "Total"); err != nil {
		return report.Document{}, err
	}

	position := make(map[string]int, len(employees))
	for i, label := range employees {
		position[label] = i + 2
		if err := w.set(1, i+2, label); err != nil {
			return report.Document{}, err
		}
	}

	columnOf := make(map[string]int, len(header))
	for i, name := range header {
		columnOf[name] = i + 1
	}
	for _, row := range rows {
		r := position[fmt.Sprintf("%s [%s]", row.Employee, row.Number)]
		c := columnOf[row.Project]
		if err := w.set(c, r, row.Hours); err != nil {
			return report.Document{}, err
		}
	}

	w.cols = totalCol
	centered := make([]int, 0, totalCol-1)
	for col := 2; col <= totalCol; col++ {
		centered = append(centered, col)
	}
	if err := w.decorate(centered); err != nil {
		return report.Document{}, err
	}
	if err := w.autoSize(); err != nil {
		return report.Document{}, err
	}
	if err := w.addTitleBlock(title, p, totalCol); err != nil {
		return report.Document{}, err
	}

	// Live per-employee totals, written after the title block shifted the
	// grid so the ranges are final.
	lastProject, err := excelize.ColumnNumberToName(totalCol - 1)
	if err != nil {
		return report.Document{}, err
	}
	for i := range employees {
		row := i + 2 + titleBlockHeight
		cell, err := excelize.CoordinatesToCellName(totalCol, row)
		if err != nil {
			return report.Document{}, err
		}
		formula := fmt.Sprintf("SUM(B%d:%s%d)", row, lastProject, row)
		if err := w.f.SetCellFormula(w.sheet, cell, formula); err != nil {
			return report.Document{}, fmt.Errorf("failed to set total formula: %w", err)
		}
	}

	return w.document()
}

func renderHoursCheckXLSX(rows []report.HoursCheckRow, p page) (report.Document, error) {
	const title = "Employees' work hours check"

	w, err := newWorkbook(title, p.landscape)
	if err != nil {
		return report.Document{}, err
	}

	header := []string{
		"Employee", "Employee ID number", "Department", "Position",
		"Staff units", "Hours assigned", "Absence hours", "Hours total",
		"Work hours", "Difference",
	}

	if len(rows) == 0 {
		if err := w.addTitleBlock(title, p, len(header)); err != nil {
			return report.Document{}, err
		}
		if err := w.addPlaceholder(len(header)); err != nil {
			return report.Document{}, err
		}
		return w.document()
	}

	for col, value := range header {
		if err := w.set(col+1, 1, value); err != nil {
			return report.Document{}, err
		}
	}

	for i, row := range rows {
		r := i + 2
		values := []interface{}{
			row.Employee, row.Number, row.Department, row.Position,
			row.StaffUnits, row.AssignedHours, row.AbsenceHours,
			row.HoursTotal, row.WorkHours, row.Difference,
		}
		for col, value := range values {
			if err := w.set(col+1, r, value); err != nil {
				return report.Document{}, err
			}
		}
	}

	if err := w.decorate([]int{2, 5, 6, 7, 8, 9, 10}); err != nil {
		return report.Document{}, err
	}
	if err := w.autoSize(); err != nil {
		return report.Document{}, err
	}
	if err := w.addTitleBlock(title, p, len(header)); err != nil {
		return report.Document{}, err
	}

	return w.document()
}

func renderDistributionXLSX(rows []report.DistributionRow, p page) (report.Document, error) {
	const title = "Employees' indexes of labor distribution"

	w, err := newWorkbook(title, p.landscape)
	if err != nil {
		return report.Document{}, err
	}

	header := []string{
		"Employee", "Employee ID number", "Staff units", "Project",
		"Index", "Employment total",
	}

	if len(rows) == 0 {
		if err := w.addTitleBlock(title, p, len(header)); err != nil {
			return report.Document{}, err
		}
		if err := w.addPlaceholder(len(header)); err != nil {
			return report.Document{}, err
		}
		return w.document()
	}

	for col, value := range header {
		if err := w.set(col+1, 1, value); err != nil {
			return report.Document{}, err
		}
	}

	for i, row := range rows {
		r := i + 2
		values := []interface{}{
			row.Employee, row.Number, row.StaffUnits, row.Project,
			row.Index, row.Total,
		}
		for col, value := range values {
			if err := w.set(col+1, r, value); err != nil {
				return report.Document{}, err
			}
		}
	}

	if err := w.decorate([]int{2, 3, 5, 6}); err != nil {
		return report.Document{}, err
	}
	if err := w.autoSize(); err != nil {
		return report.Document{}, err
	}
	if err := w.addTitleBlock(title, p, len(header)); err != nil {
		return report.Document{}, err
	}

	return addSumRow(w, 5, titleBlockHeight+2, titleBlockHeight+1+len(rows))
}

func renderProjectDistributionXLSX(rows []report.ProjectDistributionRow, p page) (report.Document, error) {
	const title = "Employees' indexes of labor distribution per project"

	w, err := newWorkbook(title, p.landscape)
	if err != nil {
		return report.Document{}, err
	}

	header := []string{"Employee", "Employee ID number", "Project", "Index"}

	if len(rows) == 0 {
		if err := w.addTitleBlock(title, p, len(header)); err != nil {
			return report.Document{}, err
		}
		if err := w.addPlaceholder(len(header)); err != nil {
			return report.Document{}, err
		}
		return w.document()
	}

	for col, value := range header {
		if err := w.set(col+1, 1, value); err != nil {
			return report.Document{}, err
		}
	}

	for i, row := range rows {
		r := i + 2
		values := []interface{}{row.Employee, row.Number, row.Project, row.Index}
		for col, value := range values {
			if err := w.set(col+1, r, value); err != nil {
				return report.Document{}, err
			}
		}
	}

	if err := w.decorate([]int{2, 4}); err != nil {
		return report.Document{}, err
	}
	if err := w.autoSize(); err != nil {
		return report.Document{}, err
	}
	if err := w.addTitleBlock(title, p, len(header)); err != nil {
		return report.Document{}, err
	}

	return addSumRow(w, 4, titleBlockHeight+2, titleBlockHeight+1+len(rows))
}

// addSumRow appends a "Total" row with a live SUM over the value column,
// spanning the already-shifted data rows [firstRow, lastRow].
func addSumRow(w *sheetWriter, valueCol, firstRow, lastRow int) (report.Document, error) {
	labelCell, err := excelize.CoordinatesToCellName(valueCol-1, lastRow+1)
	if err != nil {
		return report.Document{}, err
	}
	if err := w.f.SetCellValue(w.sheet, labelCell, "Total"); err != nil {
		return report.Document{}, err
	}

	column, err := excelize.ColumnNumberToName(valueCol)
	if err != nil {
		return report.Document{}, err
	}
	cell, err := excelize.CoordinatesToCellName(valueCol, lastRow+1)
	if err != nil {
		return report.Document{}, err
	}
	formula := fmt.Sprintf("SUM(%s%d:%s%d)", column, firstRow, column, lastRow)
	if err := w.f.SetCellFormula(w.sheet, cell, formula); err != nil {
		return report.Document{}, fmt.Errorf("failed to set total formula: %w", err)
	}

	return w.document()
}
