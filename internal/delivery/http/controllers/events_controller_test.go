package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event     *domain.Event
	createErr error
	listRes   []*domain.Event
	listErr   error
	updateErr error
	deleteErr error
	attRows   []*domain.EventAttendanceRow
	attErr    error

	lastName     string
	lastDate     time.Time
	lastUpdateID int64
	lastDeleteID int64
}

func (f *fakeEventService) Create(ctx context.Context, name string, date time.Time) (*domain.Event, error) {
	f.lastName = name
	f.lastDate = date
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: 7, Name: name, Date: date}, nil
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRes, nil
}

func (f *fakeEventService) Update(ctx context.Context, id int64, name string, date time.Time) (*domain.Event, error) {
	f.lastUpdateID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Event{ID: id, Name: name, Date: date}, nil
}

func (f *fakeEventService) Delete(ctx context.Context, id int64) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeEventService) ListAttendance(ctx context.Context, eventID int64) ([]*domain.EventAttendanceRow, error) {
	if f.attErr != nil {
		return nil, f.attErr
	}
	return f.attRows, nil
}

func TestEventController_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fake           *fakeEventService
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Orientation","date":"2026-03-15"}`,
			fake:       &fakeEventService{},
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing name",
			body:           `{"date":"2026-03-15"}`,
			fake:           &fakeEventService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "malformed date",
			body:           `{"name":"Orientation","date":"03/15/2026"}`,
			fake:           &fakeEventService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "YYYY-MM-DD",
		},
		{
			name:       "service error",
			body:       `{"name":"Orientation","date":"2026-03-15"}`,
			fake:       &fakeEventService{createErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Orientation", tt.fake.lastName)
				assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), tt.fake.lastDate)
			}
		})
	}
}

func TestEventController_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		body := `{"name":"Orientation (moved)","date":"2026-03-20"}`
		req := httptest.NewRequest(http.MethodPut, "/events/7", bytes.NewBufferString(body))
		req.SetPathValue("id", "7")
		rr := httptest.NewRecorder()

		ctrl.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(7), fake.lastUpdateID)
	})

	t.Run("invalid path id", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodPut, "/events/abc", bytes.NewBufferString(`{}`))
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		ctrl.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{updateErr: domain.ErrNotFound})
		body := `{"name":"X","date":"2026-03-20"}`
		req := httptest.NewRequest(http.MethodPut, "/events/99", bytes.NewBufferString(body))
		req.SetPathValue("id", "99")
		rr := httptest.NewRecorder()

		ctrl.Update(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEventController_Delete(t *testing.T) {
	tests := []struct {
		name       string
		fake       *fakeEventService
		wantStatus int
	}{
		{"success", &fakeEventService{}, http.StatusOK},
		{"not found", &fakeEventService{deleteErr: domain.ErrNotFound}, http.StatusNotFound},
		{"has attendance logs", &fakeEventService{deleteErr: domain.ErrConflict}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodDelete, "/events/7", nil)
			req.SetPathValue("id", "7")
			rr := httptest.NewRecorder()

			ctrl.Delete(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, int64(7), tt.fake.lastDeleteID)
		})
	}
}

func TestEventController_ListAttendance(t *testing.T) {
	rows := []*domain.EventAttendanceRow{
		{LogID: 42, StudentID: "2026-0001", StudentName: "Ana Reyes", Timestamp: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)},
	}
	ctrl := NewEventController(testLogger, &fakeEventService{attRows: rows})
	req := httptest.NewRequest(http.MethodGet, "/events/7/attendance", nil)
	req.SetPathValue("id", "7")
	rr := httptest.NewRecorder()

	ctrl.ListAttendance(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data  []*domain.EventAttendanceRow `json:"data"`
		Error *helpers.APIError            `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, int64(42), envelope.Data[0].LogID)
}
