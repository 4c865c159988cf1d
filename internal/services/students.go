package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"attendtrack/internal/domain"
)

type studentService struct {
	repo domain.StudentRepository
}

// NewStudentService creates a StudentService backed by the given repository.
func NewStudentService(repo domain.StudentRepository) domain.StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) Create(ctx context.Context, id, name, rfid string, photo, course *string) (*domain.Student, error) {
	now := time.Now()
	student := domain.NewStudent(id, name, rfid, now, now)
	student.Photo = photo
	student.Course = course
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ResolveTag maps a physical tag code to the student carrying it. The input
// is trimmed of surrounding whitespace; the match itself is case-sensitive.
func (s *studentService) ResolveTag(ctx context.Context, tag string) (*domain.Student, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, domain.ErrNotFound
	}
	student, err := s.repo.GetByRFID(ctx, tag)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get student by rfid: %w", err)
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, currentID, newID, name, rfid string, photo, course *string) (*domain.Student, error) {
	student := &domain.Student{
		ID:     newID,
		Name:   name,
		RFID:   rfid,
		Photo:  photo,
		Course: course,
	}
	if err := s.repo.Update(ctx, currentID, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
