package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"attendtrack/internal/domain"
)

// PDF table geometry, in points on an A4 portrait page.
const (
	pageMargin = 40
	rowHeight  = 20
	bandHeight = 20
)

// Column widths: Student ID, Student Name, RFID, Attendance Time.
var columnWidths = [4]float64{80, 180, 100, 150}

// RenderPDF encodes the report as a paginated A4 document. Rows advance at a
// fixed vertical increment; when a row would cross the printable height a new
// page starts and the column header band is repeated.
func (r *renderer) RenderPDF(event *domain.Event, rows []*domain.ReportRow) ([]byte, error) {
	doc := buildPDF(event, rows)
	if doc.Err() {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, doc.Error())
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func buildPDF(event *domain.Event, rows []*domain.ReportRow) *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.AddPage()

	eventLine, dateLine := headerLines(event)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 20, eventLine, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 18, dateLine, "", 1, "L", false, 0, "")
	doc.Ln(10)

	_, pageHeight := doc.GetPageSize()
	limit := pageHeight - pageMargin - rowHeight

	writeHeaderBand(doc)
	for _, row := range rows {
		if doc.GetY() > limit {
			doc.AddPage()
			writeHeaderBand(doc)
		}
		writeRow(doc, row)
	}
	return doc
}

// writeHeaderBand draws the amber column header band at the current cursor.
func writeHeaderBand(doc *fpdf.Fpdf) {
	doc.SetFillColor(0xC9, 0x97, 0x00)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 12)
	for i, h := range columnHeaders {
		doc.CellFormat(columnWidths[i], bandHeight, h, "", 0, "L", true, 0, "")
	}
	doc.Ln(bandHeight)
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
}

func writeRow(doc *fpdf.Fpdf, row *domain.ReportRow) {
	cells := [4]string{
		row.StudentID,
		row.StudentName,
		row.RFID,
		row.AttendanceTime.Format(dateTimeLayout),
	}
	for i, c := range cells {
		doc.CellFormat(columnWidths[i], rowHeight, c, "", 0, "L", false, 0, "")
	}
	doc.Ln(rowHeight)
}
