package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"attendtrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, &fakeAttendanceRepo{})

		event, err := svc.Create(ctx, "Orientation", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, int64(7), event.ID)
		assert.False(t, event.CreatedAt.IsZero())
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{createErr: errors.New("db down")}, &fakeAttendanceRepo{})

		_, err := svc.Create(ctx, "Orientation", time.Now())
		require.Error(t, err)
	})
}

func TestEventService_ListAttendance(t *testing.T) {
	ctx := context.Background()
	rows := []*domain.EventAttendanceRow{
		{LogID: 42, StudentID: "2026-0001", StudentName: "Ana Reyes", Timestamp: time.Now()},
	}

	t.Run("success", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, &fakeAttendanceRepo{listRows: rows})

		got, err := svc.ListAttendance(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, &fakeAttendanceRepo{listErr: errors.New("db down")})

		_, err := svc.ListAttendance(ctx, 7)
		require.Error(t, err)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("referenced event surfaces as conflict", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{deleteErr: domain.ErrConflict}, &fakeAttendanceRepo{})

		err := svc.Delete(ctx, 7)
		require.True(t, errors.Is(err, domain.ErrConflict))
	})
}
