package http

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"attendtrack/internal/delivery/http/controllers"
	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/delivery/http/middleware"
	"attendtrack/internal/domain"
)

// Pinger reports whether the store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig carries the controllers and cross-cutting pieces the router
// wires together.
type RouterConfig struct {
	Students   *controllers.StudentController
	Events     *controllers.EventController
	Attendance *controllers.AttendanceController
	Reports    *controllers.ReportController
	Stats      *controllers.StatsController
	Auth       *controllers.AuthController

	// Verifier backs the Bearer-token gate on mutating admin routes when
	// AuthRequired is true. Scan and read routes are always tokenless.
	Verifier     domain.TokenVerifier
	AuthRequired bool

	DB Pinger
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		if cfg.AuthRequired {
			return middleware.RequireAuth(cfg.Verifier)(h)
		}
		return h
	}

	// Attendance pipeline
	mux.HandleFunc("POST /log-attendance", cfg.Attendance.Log)

	// Events
	mux.HandleFunc("GET /events", cfg.Events.List)
	mux.HandleFunc("POST /events", admin(cfg.Events.Create))
	mux.HandleFunc("PUT /events/{id}", admin(cfg.Events.Update))
	mux.HandleFunc("DELETE /events/{id}", admin(cfg.Events.Delete))
	mux.HandleFunc("GET /events/{id}/attendance", cfg.Events.ListAttendance)

	// Students
	mux.HandleFunc("GET /students", cfg.Students.List)
	mux.HandleFunc("POST /students", admin(cfg.Students.Create))
	mux.HandleFunc("GET /students/rfid/{rfid}", cfg.Students.ResolveTag)
	mux.HandleFunc("PUT /students/{id}", admin(cfg.Students.Update))
	mux.HandleFunc("DELETE /students/{id}", admin(cfg.Students.Delete))

	// Reports
	mux.HandleFunc("GET /reports/{eventID}", cfg.Reports.Spreadsheet)
	mux.HandleFunc("GET /reports/pdf/{eventID}", cfg.Reports.PDF)
	mux.HandleFunc("POST /reports/{eventID}/email", admin(cfg.Reports.Email))

	// Stats
	mux.HandleFunc("GET /api/stats/total-events", cfg.Stats.TotalEvents)
	mux.HandleFunc("GET /api/stats/total-students", cfg.Stats.TotalStudents)
	mux.HandleFunc("GET /api/stats/total-users", cfg.Stats.TotalUsers)

	// Auth
	mux.HandleFunc("POST /admin/login", cfg.Auth.Login)

	// Operational
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := cfg.DB.PingContext(ctx); err != nil {
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unreachable")
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
