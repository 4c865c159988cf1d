package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one
// dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmailReportRequest is the request body for POST /reports/{eventID}/email.
type EmailReportRequest struct {
	To string `json:"to"`
}

// Validate implements Validator.
func (e EmailReportRequest) Validate() []string {
	var errs []string
	if e.To == "" {
		errs = append(errs, "to is required")
	} else if !emailRegex.MatchString(e.To) {
		errs = append(errs, "to must be a valid email address")
	}
	return errs
}

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// Spreadsheet godoc
// @Summary Download the attendance report as a spreadsheet
// @Description Renders the event's report projection as an xlsx attachment. An event with no logs downloads as a header-only sheet.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param eventID path int true "Event ID"
// @Success 200 {file} binary "xlsx attachment"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event absent)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/{eventID} [get]
func (c *ReportController) Spreadsheet(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	data, filename, err := c.Service.Spreadsheet(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	c.writeAttachment(w, data, filename, xlsxContentType)
}

// PDF godoc
// @Summary Download the attendance report as a PDF
// @Description Renders the event's report projection as a paginated PDF attachment with the column header repeated on every page.
// @Tags reports
// @Produce application/pdf
// @Param eventID path int true "Event ID"
// @Success 200 {file} binary "PDF attachment"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event absent)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/pdf/{eventID} [get]
func (c *ReportController) PDF(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	data, filename, err := c.Service.PDF(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	c.writeAttachment(w, data, filename, "application/pdf")
}

// Email godoc
// @Summary Email the attendance report
// @Description Renders the report as HTML and delivers it to the given address.
// @Tags reports
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body EmailReportRequest true "Recipient"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event absent)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/{eventID}/email [post]
func (c *ReportController) Email(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req EmailReportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Email(r.Context(), eventID, req.To); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "Report sent"})
}

// writeAttachment writes a fully rendered document. Rendering happens before
// the first byte is written, so an error response is never mixed with
// partial document content.
func (c *ReportController) writeAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (c *ReportController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
