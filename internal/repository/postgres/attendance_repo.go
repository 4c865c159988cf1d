package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"attendtrack/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

// Insert writes one attendance log in a single statement. Existence of the
// referenced student and event is enforced by the store's foreign keys, so
// there is no lookup-then-insert race to worry about: a missing reference
// fails the insert itself.
func (r *attendanceRepository) Insert(ctx context.Context, studentID string, eventID int64) (*domain.AttendanceLog, error) {
	query := `
		INSERT INTO attendance_logs (student_id, event_id)
		VALUES ($1, $2)
		RETURNING id, timestamp
	`
	log := &domain.AttendanceLog{StudentID: studentID, EventID: eventID}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID).Scan(&log.ID, &log.Timestamp)
	if err != nil {
		if isForeignKeyViolation(err) {
			if strings.Contains(constraintName(err), "event") {
				return nil, fmt.Errorf("event %d does not exist: %w", eventID, domain.ErrNotFound)
			}
			return nil, fmt.Errorf("student %q does not exist: %w", studentID, domain.ErrNotFound)
		}
		return nil, err
	}
	return log, nil
}

func (r *attendanceRepository) RecentLog(ctx context.Context, studentID string, eventID int64, window time.Duration) (*domain.AttendanceLog, error) {
	query := `
		SELECT id, student_id, event_id, timestamp
		FROM attendance_logs
		WHERE student_id = $1 AND event_id = $2 AND timestamp >= NOW() - ($3 * interval '1 second')
		ORDER BY timestamp DESC
		LIMIT 1
	`
	log := &domain.AttendanceLog{}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID, window.Seconds()).
		Scan(&log.ID, &log.StudentID, &log.EventID, &log.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return log, nil
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventAttendanceRow, error) {
	query := `
		SELECT al.id, al.timestamp, s.id, s.name
		FROM attendance_logs al
		JOIN students s ON al.student_id = s.id
		WHERE al.event_id = $1
		ORDER BY al.timestamp DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.EventAttendanceRow, 0)
	for rows.Next() {
		row := &domain.EventAttendanceRow{}
		if err := rows.Scan(&row.LogID, &row.Timestamp, &row.StudentID, &row.StudentName); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *attendanceRepository) ReportByEvent(ctx context.Context, eventID int64) ([]*domain.ReportRow, error) {
	query := `
		SELECT s.id, s.name, s.rfid, s.photo, e.name, e.date, al.timestamp
		FROM attendance_logs al
		JOIN students s ON al.student_id = s.id
		JOIN events e ON al.event_id = e.id
		WHERE e.id = $1
		ORDER BY al.timestamp DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.ReportRow, 0)
	for rows.Next() {
		row := &domain.ReportRow{}
		var photo sql.NullString
		if err := rows.Scan(&row.StudentID, &row.StudentName, &row.RFID, &photo, &row.EventName, &row.EventDate, &row.AttendanceTime); err != nil {
			return nil, err
		}
		if photo.Valid {
			row.Photo = &photo.String
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
