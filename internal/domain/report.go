package domain

import (
	"context"
	"time"
)

// ReportRow is one row of the report projection: an attendance log joined
// with its student and event. Used exclusively by export rendering.
type ReportRow struct {
	StudentID      string
	StudentName    string
	RFID           string
	Photo          *string
	EventName      string
	EventDate      time.Time
	AttendanceTime time.Time
}

// ReportRenderer encodes a report into a downloadable document. Both formats
// carry identical logical content: an event header block, a column header row
// (Student ID, Student Name, RFID, Attendance Time) and one row per log. A
// zero-row report is valid and renders as the headers alone.
type ReportRenderer interface {
	RenderSpreadsheet(event *Event, rows []*ReportRow) ([]byte, error)
	RenderPDF(event *Event, rows []*ReportRow) ([]byte, error)
}

// ReportService builds and renders per-event attendance reports.
type ReportService interface {
	// Spreadsheet renders the event's report as an xlsx document and
	// returns the document bytes with a suggested filename.
	Spreadsheet(ctx context.Context, eventID int64) (data []byte, filename string, err error)
	// PDF renders the event's report as a paginated PDF document.
	PDF(ctx context.Context, eventID int64) (data []byte, filename string, err error)
	// Email renders the event's report as HTML and delivers it to the given
	// address.
	Email(ctx context.Context, eventID int64, to string) error
}

// StatsService answers the dashboard's aggregate counts.
type StatsService interface {
	TotalEvents(ctx context.Context) (int, error)
	TotalStudents(ctx context.Context) (int, error)
	TotalUsers(ctx context.Context) (int, error)
}

// StatsRepository answers aggregate counts against the store.
type StatsRepository interface {
	CountEvents(ctx context.Context) (int, error)
	CountStudents(ctx context.Context) (int, error)
}
