package postgres

import (
	"context"
	"database/sql"

	"attendtrack/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{
		DB: db,
	}
}

func (r *statsRepository) CountEvents(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *statsRepository) CountStudents(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}
