package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendtrack/internal/domain"
)

type attendanceService struct {
	repo     domain.AttendanceRepository
	cooldown time.Duration
}

// NewAttendanceService creates the attendance recorder. cooldown is the
// duplicate-scan suppression window: when positive, a scan that repeats an
// existing log for the same student and event inside the window returns that
// log instead of inserting a new row. Zero disables suppression and every
// scan produces its own row.
func NewAttendanceService(repo domain.AttendanceRepository, cooldown time.Duration) domain.AttendanceService {
	return &attendanceService{repo: repo, cooldown: cooldown}
}

func (s *attendanceService) Record(ctx context.Context, studentID string, eventID int64) (*domain.AttendanceLog, bool, error) {
	if s.cooldown > 0 {
		recent, err := s.repo.RecentLog(ctx, studentID, eventID, s.cooldown)
		if err == nil {
			return recent, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("check recent log: %w", err)
		}
	}

	log, err := s.repo.Insert(ctx, studentID, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("record attendance: %w", err)
	}
	return log, true, nil
}
