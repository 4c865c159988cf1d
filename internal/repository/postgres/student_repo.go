package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"attendtrack/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{
		DB: db,
	}
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (id, name, rfid, photo, course, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Name, s.RFID, s.Photo, s.Course, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student id or rfid already exists: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `
		SELECT id, name, rfid, photo, course, created_at, updated_at
		FROM students
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *studentRepository) GetByRFID(ctx context.Context, rfid string) (*domain.Student, error) {
	query := `
		SELECT id, name, rfid, photo, course, created_at, updated_at
		FROM students
		WHERE rfid = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, rfid))
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	query := `
		SELECT id, name, rfid, photo, course, created_at, updated_at
		FROM students
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		s := &domain.Student{}
		var photo, course sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.RFID, &photo, &course, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if photo.Valid {
			s.Photo = &photo.String
		}
		if course.Valid {
			s.Course = &course.String
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *studentRepository) Update(ctx context.Context, currentID string, s *domain.Student) error {
	query := `
		UPDATE students
		SET id = $1, name = $2, rfid = $3, photo = $4, course = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`
	err := r.DB.QueryRowContext(ctx, query, s.ID, s.Name, s.RFID, s.Photo, s.Course, currentID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("student id or rfid already exists: %w", domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("student has attendance logs: %w", domain.ErrConflict)
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepository) scanOne(row *sql.Row) (*domain.Student, error) {
	s := &domain.Student{}
	var photo, course sql.NullString
	err := row.Scan(&s.ID, &s.Name, &s.RFID, &photo, &course, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if photo.Valid {
		s.Photo = &photo.String
	}
	if course.Valid {
		s.Course = &course.String
	}
	return s, nil
}
