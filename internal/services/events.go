package services

import (
	"context"
	"fmt"
	"time"

	"attendtrack/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	attendanceRepo domain.AttendanceRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(repo domain.EventRepository, attendanceRepo domain.AttendanceRepository) domain.EventService {
	return &eventService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *eventService) Create(ctx context.Context, name string, date time.Time) (*domain.Event, error) {
	now := time.Now()
	event := domain.NewEvent(name, date, now, now)
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id int64, name string, date time.Time) (*domain.Event, error) {
	event := &domain.Event{ID: id, Name: name, Date: date}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ListAttendance returns the event's logs joined with student identity,
// newest scan first. Reads go straight to the store; there is no cache.
func (s *eventService) ListAttendance(ctx context.Context, eventID int64) ([]*domain.EventAttendanceRow, error) {
	rows, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return rows, nil
}
