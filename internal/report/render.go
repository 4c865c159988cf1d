// Package report renders per-event attendance reports into downloadable
// documents. The spreadsheet and PDF encodings carry identical logical
// content: an event header block, a column header row, and one row per
// attendance log, newest first. A zero-row report renders as the headers
// alone in both formats.
package report

import (
	"fmt"

	"attendtrack/internal/domain"
)

// Timestamp layouts matching en-US locale rendering.
const (
	dateLayout     = "1/2/2006"
	dateTimeLayout = "1/2/2006, 3:04:05 PM"
)

var columnHeaders = []string{"Student ID", "Student Name", "RFID", "Attendance Time"}

type renderer struct{}

// NewRenderer returns the document renderer for attendance reports.
func NewRenderer() domain.ReportRenderer {
	return &renderer{}
}

func headerLines(event *domain.Event) (string, string) {
	return fmt.Sprintf("Event: %s", event.Name),
		fmt.Sprintf("Date: %s", event.Date.Format(dateLayout))
}
