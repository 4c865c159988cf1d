package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendtrack/config"
	authadapter "attendtrack/internal/adapters/auth"
	emailadapter "attendtrack/internal/adapters/email"
	httpdelivery "attendtrack/internal/delivery/http"
	"attendtrack/internal/delivery/http/controllers"
	"attendtrack/internal/delivery/http/middleware"
	"attendtrack/internal/report"
	"attendtrack/internal/repository/postgres"
	"attendtrack/internal/services"
)

// @title           attendtrack API
// @version         1.0
// @description     RFID attendance tracking: students, events, scan logging and report export.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		// An unreachable store at startup is fatal.
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	studentRepo := postgres.NewStudentRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	issuer, verifier := authadapter.NewJWT(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(12)
	renderer := report.NewRenderer()
	templates := emailadapter.NewTemplateRenderer()

	studentSvc := services.NewStudentService(studentRepo)
	eventSvc := services.NewEventService(eventRepo, attendanceRepo)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, cfg.AttendanceCooldown)
	reportSvc := services.NewReportService(eventRepo, attendanceRepo, renderer, mailer, templates)
	statsSvc := services.NewStatsService(statsRepo)

	mux := httpdelivery.NewRouter(httpdelivery.RouterConfig{
		Students:     controllers.NewStudentController(logger, studentSvc),
		Events:       controllers.NewEventController(logger, eventSvc),
		Attendance:   controllers.NewAttendanceController(logger, attendanceSvc),
		Reports:      controllers.NewReportController(logger, reportSvc),
		Stats:        controllers.NewStatsController(logger, statsSvc),
		Auth:         controllers.NewAuthController(logger, hasher, issuer, cfg.AdminEmail, cfg.AdminPasswordHash, cfg.AdminPasswordSalt, cfg.JWTExpiry),
		Verifier:     verifier,
		AuthRequired: cfg.AuthRequired,
		DB:           db,
	})

	handler := middleware.Metrics(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.CORSAllowedOrigins, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
}
