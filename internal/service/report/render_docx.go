package report

import (
	"bytes"
	"fmt"
	"strconv"

	"baliance.com/gooxml"
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
)

// A4 dimensions in twentieths of a point.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
	pageMarginTwips = 1134 // 2cm
)

func twips(v uint64) sharedTypes.ST_TwipsMeasure {
	return sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(v)}
}

func setPageGeometry(doc *document.Document, landscape bool) {
	body := doc.X().Body
	if body.SectPr == nil {
		body.SectPr = wml.NewCT_SectPr()
	}

	width, height := uint64(pageWidthTwips), uint64(pageHeightTwips)
	orientation := wml.ST_PageOrientationPortrait
	if landscape {
		width, height = height, width
		orientation = wml.ST_PageOrientationLandscape
	}

	size := wml.NewCT_PageSz()
	w := twips(width)
	h := twips(height)
	size.WAttr = &w
	size.HAttr = &h
	size.OrientAttr = orientation
	body.SectPr.PgSz = size

	margins := wml.NewCT_PageMar()
	margins.TopAttr = wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(pageMarginTwips)}
	margins.BottomAttr = wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(pageMarginTwips)}
	margins.LeftAttr = twips(pageMarginTwips)
	margins.RightAttr = twips(pageMarginTwips)
	margins.HeaderAttr = twips(pageMarginTwips / 2)
	margins.FooterAttr = twips(pageMarginTwips / 2)
	margins.GutterAttr = twips(0)
	body.SectPr.PgMar = margins
}

func newDocx(title string, p page) *document.Document {
	doc := document.New()
	setPageGeometry(doc, p.landscape)

	heading := doc.AddParagraph()
	run := heading.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(14 * measurement.Point)
	run.AddText(title)

	doc.AddParagraph().AddRun().AddText(p.subtitle())
	doc.AddParagraph()

	return doc
}

func newDocxTable(doc *document.Document) document.Table {
	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)
	return table
}

func addDocxCell(row document.Row, text string, bold, centered bool) document.Cell {
	cell := row.AddCell()
	cell.Properties().SetVerticalAlignment(wml.ST_VerticalJcCenter)

	para := cell.AddParagraph()
	if centered {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	run := para.AddRun()
	if bold {
		run.Properties().SetBold(true)
	}
	run.AddText(text)
	return cell
}

// setVerticalMerge marks a cell as the start or continuation of a
// vertically merged run of cells.
func setVerticalMerge(cell document.Cell, restart bool) {
	tcPr := cell.X().TcPr
	if tcPr == nil {
		tcPr = wml.NewCT_TcPr()
		cell.X().TcPr = tcPr
	}

	merge := wml.NewCT_VMerge()
	if restart {
		merge.ValAttr = wml.ST_MergeRestart
	} else {
		merge.ValAttr = wml.ST_MergeContinue
	}
	tcPr.VMerge = merge
}

// formatHours renders an hour value without a trailing fractional part
// when it is whole.
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func docxDocument(doc *document.Document) (report.Document, error) {
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return report.Document{}, fmt.Errorf("failed to save document: %w", err)
	}
	return report.Document{Format: report.DocumentDOCX, Content: buf.Bytes()}, nil
}

func renderAssignmentDOCX(rows []report.AssignmentReportRow, p page) (report.Document, error) {
	doc := newDocx("Employees' assignments", p)

	if len(rows) == 0 {
		doc.AddParagraph().AddRun().AddText(emptyText)
		return docxDocument(doc)
	}

	table := newDocxTable(doc)

	header := table.AddRow()
	for _, label := range []string{
		"Employee", "Employee ID number", "Department", "Position",
		"Project", "Hours",
	} {
		addDocxCell(header, label, true, true)
	}

	// Rows arrive sorted by employee, so repeated identity cells of one
	// employment form contiguous runs that can be merged vertically.
	for i, row := range rows {
		continued := i > 0 && rows[i-1].Number == row.Number
		restart := !continued && i+1 < len(rows) && rows[i+1].Number == row.Number

		tr := table.AddRow()
		identity := []string{row.Employee, row.Number, row.Department, row.Position}
		for _, value := range identity {
			if continued {
				cell := addDocxCell(tr, "", false, false)
				setVerticalMerge(cell, false)
				continue
			}
			cell := addDocxCell(tr, value, false, false)
			if restart {
				setVerticalMerge(cell, true)
			}
		}
		addDocxCell(tr, row.Project, false, false)
		addDocxCell(tr, formatHours(row.Hours), false, true)
	}

	return docxDocument(doc)
}

func renderMatrixDOCX(rows []report.MatrixReportRow, absenceLabel string, p page) (report.Document, error) {
	doc := newDocx("Employees' assignments matrix", p)

	if len(rows) == 0 {
		doc.AddParagraph().AddRun().AddText(emptyText)
		return docxDocument(doc)
	}

	employees, header := matrixLabels(rows, absenceLabel)

	hours := make(map[string]map[string]float64, len(employees))
	for _, row := range rows {
		label := fmt.Sprintf("%s [%s]", row.Employee, row.Number)
		if hours[label] == nil {
			hours[label] = make(map[string]float64)
		}
		hours[label][row.Project] += row.Hours
	}

	table := newDocxTable(doc)

	tr := table.AddRow()
	for _, label := range header {
		addDocxCell(tr, label, true, true)
	}

	for _, label := range employees {
		tr := table.AddRow()
		addDocxCell(tr, label, false, false)
		for _, project := range header[1:] {
			value := ""
			if h, ok := hours[label][project]; ok {
				value = formatHours(h)
			}
			addDocxCell(tr, value, false, true)
		}
	}

	return docxDocument(doc)
}
