package services

import (
	"context"
	"fmt"

	"attendtrack/internal/domain"
)

type statsService struct {
	repo domain.StatsRepository
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo domain.StatsRepository) domain.StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) TotalEvents(ctx context.Context) (int, error) {
	count, err := s.repo.CountEvents(ctx)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (s *statsService) TotalStudents(ctx context.Context) (int, error) {
	count, err := s.repo.CountStudents(ctx)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

// TotalUsers reports the number of console users. There is no users table;
// the single configured administrator is the only user.
func (s *statsService) TotalUsers(ctx context.Context) (int, error) {
	return 1, nil
}
