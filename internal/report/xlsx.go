package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"attendtrack/internal/domain"
)

const sheetName = "Attendance Report"

// RenderSpreadsheet encodes the report as a single continuous xlsx sheet.
// Layout: event header block on row 1, a blank spacer row, the column header
// row, then one row per attendance log.
func (r *renderer) RenderSpreadsheet(event *domain.Event, rows []*domain.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	eventLine, dateLine := headerLines(event)
	headerRow := make([]any, len(columnHeaders))
	for i, h := range columnHeaders {
		headerRow[i] = h
	}
	cells := [][]any{
		{eventLine, dateLine},
		{},
		headerRow,
	}
	for _, row := range rows {
		cells = append(cells, []any{
			row.StudentID,
			row.StudentName,
			row.RFID,
			row.AttendanceTime.Format(dateTimeLayout),
		})
	}

	for i, rowCells := range cells {
		if len(rowCells) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &rowCells); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 25); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}
