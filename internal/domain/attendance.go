package domain

import (
	"context"
	"time"
)

// AttendanceLog is a single record of one student being present at one event.
// ID and Timestamp are assigned by the store on insert. Logs are append-only:
// no update or delete path exists.
// swagger:model AttendanceLog
type AttendanceLog struct {
	ID        int64     `json:"id"`
	StudentID string    `json:"student_id"`
	EventID   int64     `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

// EventAttendanceRow is one row of the attendance-by-event projection: the
// log joined with the student it references.
// swagger:model EventAttendanceRow
type EventAttendanceRow struct {
	LogID       int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
}

// AttendanceRepository defines storage operations for attendance logs.
type AttendanceRepository interface {
	// Insert writes one log row. The store assigns id and timestamp and
	// checks that the referenced student and event exist; a missing
	// reference surfaces as ErrNotFound.
	Insert(ctx context.Context, studentID string, eventID int64) (*AttendanceLog, error)
	// RecentLog returns the newest log for (studentID, eventID) within the
	// given window, or ErrNotFound when none exists.
	RecentLog(ctx context.Context, studentID string, eventID int64, window time.Duration) (*AttendanceLog, error)
	// ListByEvent returns the event's logs joined with student id and name,
	// ordered by timestamp descending.
	ListByEvent(ctx context.Context, eventID int64) ([]*EventAttendanceRow, error)
	// ReportByEvent returns the denormalized report projection for the
	// event, ordered by timestamp descending.
	ReportByEvent(ctx context.Context, eventID int64) ([]*ReportRow, error)
}

// AttendanceService records scans as attendance logs.
type AttendanceService interface {
	// Record persists one attendance log for the given student and event.
	// Returns (log, created): created is false when duplicate-scan
	// suppression returned an existing log instead of inserting.
	Record(ctx context.Context, studentID string, eventID int64) (*AttendanceLog, bool, error)
}
