package domain

import (
	"context"
	"time"
)

// Student is a registered student. The ID is caller-supplied (a student
// number), unlike events and attendance logs whose IDs the store assigns.
// ID and RFID are each unique across all students.
// swagger:model Student
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RFID      string    `json:"rfid"`
	Photo     *string   `json:"photo,omitempty"`
	Course    *string   `json:"course,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudent returns a new Student with the given fields.
func NewStudent(id, name, rfid string, createdAt, updatedAt time.Time) *Student {
	return &Student{
		ID:        id,
		Name:      name,
		RFID:      rfid,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// StudentRepository defines the interface for student storage.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	GetByRFID(ctx context.Context, rfid string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
	// Update replaces id, name and rfid of the student currently identified
	// by currentID. The new id may differ from currentID.
	Update(ctx context.Context, currentID string, student *Student) error
	Delete(ctx context.Context, id string) error
}

// StudentService defines the business logic for managing students and
// resolving physical tag codes.
type StudentService interface {
	Create(ctx context.Context, id, name, rfid string, photo, course *string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
	// ResolveTag finds the student whose rfid matches the given tag code,
	// case-sensitive, with surrounding whitespace trimmed from the input.
	ResolveTag(ctx context.Context, tag string) (*Student, error)
	Update(ctx context.Context, currentID, newID, name, rfid string, photo, course *string) (*Student, error)
	Delete(ctx context.Context, id string) error
}
