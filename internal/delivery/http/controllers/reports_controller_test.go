package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportService implements domain.ReportService for handler tests.
type fakeReportService struct {
	sheetData []byte
	sheetErr  error
	pdfData   []byte
	pdfErr    error
	emailErr  error

	lastEventID int64
	lastTo      string
}

func (f *fakeReportService) Spreadsheet(ctx context.Context, eventID int64) ([]byte, string, error) {
	f.lastEventID = eventID
	if f.sheetErr != nil {
		return nil, "", f.sheetErr
	}
	return f.sheetData, fmt.Sprintf("event_%d_report.xlsx", eventID), nil
}

func (f *fakeReportService) PDF(ctx context.Context, eventID int64) ([]byte, string, error) {
	f.lastEventID = eventID
	if f.pdfErr != nil {
		return nil, "", f.pdfErr
	}
	return f.pdfData, fmt.Sprintf("event_%d_report.pdf", eventID), nil
}

func (f *fakeReportService) Email(ctx context.Context, eventID int64, to string) error {
	f.lastEventID = eventID
	f.lastTo = to
	return f.emailErr
}

func TestReportController_Spreadsheet(t *testing.T) {
	t.Run("success sets attachment headers", func(t *testing.T) {
		fake := &fakeReportService{sheetData: []byte("xlsx-bytes")}
		ctrl := NewReportController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/reports/7", nil)
		req.SetPathValue("eventID", "7")
		rr := httptest.NewRecorder()

		ctrl.Spreadsheet(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=event_7_report.xlsx`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "xlsx-bytes", rr.Body.String())
		assert.Equal(t, int64(7), fake.lastEventID)
	})

	t.Run("invalid event id", func(t *testing.T) {
		ctrl := NewReportController(testLogger, &fakeReportService{})
		req := httptest.NewRequest(http.MethodGet, "/reports/abc", nil)
		req.SetPathValue("eventID", "abc")
		rr := httptest.NewRecorder()

		ctrl.Spreadsheet(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing event", func(t *testing.T) {
		ctrl := NewReportController(testLogger, &fakeReportService{sheetErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/reports/99", nil)
		req.SetPathValue("eventID", "99")
		rr := httptest.NewRecorder()

		ctrl.Spreadsheet(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})

	t.Run("render failure is a json error, not a partial document", func(t *testing.T) {
		ctrl := NewReportController(testLogger, &fakeReportService{sheetErr: domain.ErrRender})
		req := httptest.NewRequest(http.MethodGet, "/reports/7", nil)
		req.SetPathValue("eventID", "7")
		rr := httptest.NewRecorder()

		ctrl.Spreadsheet(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}

func TestReportController_PDF(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeReportService{pdfData: []byte("%PDF-bytes")}
		ctrl := NewReportController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/reports/pdf/7", nil)
		req.SetPathValue("eventID", "7")
		rr := httptest.NewRecorder()

		ctrl.PDF(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=event_7_report.pdf`, rr.Header().Get("Content-Disposition"))
	})

	t.Run("missing event", func(t *testing.T) {
		ctrl := NewReportController(testLogger, &fakeReportService{pdfErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/reports/pdf/99", nil)
		req.SetPathValue("eventID", "99")
		rr := httptest.NewRecorder()

		ctrl.PDF(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReportController_Email(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fake        *fakeReportService
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"to":"dean@example.edu"}`,
			fake:       &fakeReportService{},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing recipient",
			body:        `{}`,
			fake:        &fakeReportService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "invalid recipient",
			body:        `{"to":"not-an-email"}`,
			fake:        &fakeReportService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "missing event",
			body:        `{"to":"dean@example.edu"}`,
			fake:        &fakeReportService{emailErr: domain.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantErrCode: helpers.ErrCodeNotFound,
		},
		{
			name:        "delivery failure",
			body:        `{"to":"dean@example.edu"}`,
			fake:        &fakeReportService{emailErr: errors.New("ses unavailable")},
			wantStatus:  http.StatusInternalServerError,
			wantErrCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewReportController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/reports/7/email", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", "7")
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Email(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErrCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, "dean@example.edu", tt.fake.lastTo)
		})
	}
}
