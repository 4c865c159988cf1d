package controllers

import (
	"log/slog"
	"net/http"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// TotalEvents godoc
// @Summary Total event count
// @Tags stats
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {totalEvents}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/stats/total-events [get]
func (c *StatsController) TotalEvents(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.TotalEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"totalEvents": count})
}

// TotalStudents godoc
// @Summary Total student count
// @Tags stats
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {totalStudents}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/stats/total-students [get]
func (c *StatsController) TotalStudents(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.TotalStudents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"totalStudents": count})
}

// TotalUsers godoc
// @Summary Total console user count
// @Tags stats
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains {totalUsers}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/stats/total-users [get]
func (c *StatsController) TotalUsers(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.TotalUsers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int{"totalUsers": count})
}
