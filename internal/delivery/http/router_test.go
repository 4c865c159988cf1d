package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendtrack/internal/delivery/http/controllers"
	"attendtrack/internal/domain"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error { return f.err }

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) Verify(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

// stubStatsService backs a real controller so registered routes can be
// exercised end to end through the mux.
type stubStatsService struct{}

func (stubStatsService) TotalEvents(ctx context.Context) (int, error)   { return 3, nil }
func (stubStatsService) TotalStudents(ctx context.Context) (int, error) { return 12, nil }
func (stubStatsService) TotalUsers(ctx context.Context) (int, error)    { return 1, nil }

func testRouter(authRequired bool, verifier domain.TokenVerifier, db Pinger) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterConfig{
		Students:     controllers.NewStudentController(logger, nil),
		Events:       controllers.NewEventController(logger, nil),
		Attendance:   controllers.NewAttendanceController(logger, nil),
		Reports:      controllers.NewReportController(logger, nil),
		Stats:        controllers.NewStatsController(logger, stubStatsService{}),
		Auth:         &controllers.AuthController{Logger: logger},
		Verifier:     verifier,
		AuthRequired: authRequired,
		DB:           db,
	})
}

func TestRouter_Healthz(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		mux := testRouter(false, &fakeVerifier{}, &fakePinger{})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ok")
	})

	t.Run("store unreachable", func(t *testing.T) {
		mux := testRouter(false, &fakeVerifier{}, &fakePinger{err: errors.New("refused")})
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestRouter_AuthGate(t *testing.T) {
	t.Run("mutating route rejects missing token when auth required", func(t *testing.T) {
		mux := testRouter(true, &fakeVerifier{subject: "admin"}, &fakePinger{})
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("scan route stays tokenless when auth required", func(t *testing.T) {
		mux := testRouter(true, &fakeVerifier{err: errors.New("never called")}, &fakePinger{})
		req := httptest.NewRequest(http.MethodGet, "/api/stats/total-events", nil)
		rr := httptest.NewRecorder()

		mux.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	mux := testRouter(false, &fakeVerifier{}, &fakePinger{})
	req := httptest.NewRequest(http.MethodDelete, "/log-attendance", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
