package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	subject string
	err     error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		verifier    domain.TokenVerifier
		wantStatus  int
		nextCalled  bool
		wantSubject string
	}{
		{
			name:        "valid token sets context and calls next",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeTokenVerifier{subject: "admin"},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantSubject: "admin",
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no Bearer prefix",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer ",
			verifier:   &fakeTokenVerifier{subject: "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verifier rejects token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeTokenVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var capturedSubject string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if s, ok := SubjectFromContext(r.Context()); ok {
					capturedSubject = s
				}
				w.WriteHeader(http.StatusOK)
			}
			handler := RequireAuth(tt.verifier)(next)

			req := httptest.NewRequest(http.MethodPost, "http://test/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.nextCalled {
				assert.Equal(t, tt.wantSubject, capturedSubject)
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
		})
	}
}
