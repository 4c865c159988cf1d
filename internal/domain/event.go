package domain

import (
	"context"
	"time"
)

// Event represents a scheduled event students can attend. ID is set by the
// repository on create.
// swagger:model Event
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields.
func NewEvent(name string, date time.Time, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:      name,
		Date:      date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// List returns all events, newest date first.
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for managing events.
type EventService interface {
	Create(ctx context.Context, name string, date time.Time) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id int64, name string, date time.Time) (*Event, error)
	Delete(ctx context.Context, id int64) error
	ListAttendance(ctx context.Context, eventID int64) ([]*EventAttendanceRow, error)
}
