package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

// eventDateLayout is the calendar-date format accepted in event bodies.
const eventDateLayout = "2006-01-02"

// pathID parses an int64 path value. Writes a 400 error and returns false on
// a missing or non-numeric value.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// EventRequest is the request body for POST /events and PUT /events/{id}.
type EventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Validate implements Validator. Date must be a YYYY-MM-DD calendar date.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Name == "" {
		errs = append(errs, "name is required")
	}
	if e.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(eventDateLayout, e.Date); err != nil {
		errs = append(errs, "date must be formatted YYYY-MM-DD")
	}
	return errs
}

// EventSuccessResponse is the success envelope for event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Creates an event; the store assigns the id.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(eventDateLayout, req.Date)
	event, err := c.Service.Create(r.Context(), req.Name, date)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// List godoc
// @Summary List events, newest first
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event array"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "New event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(eventDateLayout, req.Date)
	event, err := c.Service.Update(r.Context(), id, req.Name, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Fails with a conflict when attendance logs still reference the event.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event has attendance logs)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	err := c.Service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "event has attendance logs")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// ListAttendance godoc
// @Summary Attendance logs for an event
// @Description Logs joined with student id and name, ordered by timestamp descending.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendance row array"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id}/attendance [get]
func (c *EventController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rows, err := c.Service.ListAttendance(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rows)
}
