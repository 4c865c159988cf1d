package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

// LogAttendanceRequest is the request body for POST /log-attendance. Both
// fields are required; the scanner resolves the tag to studentId first via
// GET /students/rfid/{rfid}.
type LogAttendanceRequest struct {
	StudentID string `json:"studentId"`
	EventID   int64  `json:"eventId"`
}

// Validate implements Validator.
func (l LogAttendanceRequest) Validate() []string {
	var errs []string
	if l.StudentID == "" {
		errs = append(errs, "studentId is required")
	}
	if l.EventID <= 0 {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// LogAttendanceResponse is the success payload for POST /log-attendance.
// Created is false when duplicate-scan suppression returned an existing log.
type LogAttendanceResponse struct {
	Message string                `json:"message"`
	Log     *domain.AttendanceLog `json:"log"`
	Created bool                  `json:"created"`
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// Log godoc
// @Summary Record a scan as an attendance log
// @Description Inserts one attendance log with a store-assigned timestamp. The insert is a single atomic statement; a missing student or event fails it with not_found.
// @Tags attendance
// @Accept json
// @Produce json
// @Param scan body LogAttendanceRequest true "Scan data"
// @Success 200 {object} helpers.APIResponse "data contains message, log and created flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing studentId or eventId)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (student or event absent)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /log-attendance [post]
func (c *AttendanceController) Log(w http.ResponseWriter, r *http.Request) {
	var req LogAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	log, created, err := c.Service.Record(r.Context(), req.StudentID, req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LogAttendanceResponse{
		Message: "Attendance logged successfully!",
		Log:     log,
		Created: created,
	})
}
