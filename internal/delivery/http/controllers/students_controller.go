package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

// StudentRequest is the request body for POST /students and PUT
// /students/{id}. id, name and rfid are required; photo and course are
// optional.
type StudentRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	RFID   string  `json:"rfid"`
	Photo  *string `json:"photo"`
	Course *string `json:"course"`
}

// Validate implements Validator.
func (s StudentRequest) Validate() []string {
	var errs []string
	if s.ID == "" {
		errs = append(errs, "id is required")
	}
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if s.RFID == "" {
		errs = append(errs, "rfid is required")
	}
	return errs
}

// StudentSuccessResponse is the success envelope for student endpoints.
type StudentSuccessResponse struct {
	Data  *domain.Student   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register a student
// @Description Creates a student with a caller-supplied id and a unique RFID tag code.
// @Tags students
// @Accept json
// @Produce json
// @Param student body StudentRequest true "Student data"
// @Success 201 {object} controllers.StudentSuccessResponse "data contains the created student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate id or rfid)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [post]
func (c *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.Create(r.Context(), req.ID, req.Name, req.RFID, req.Photo, req.Course)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "duplicate student id or rfid")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// List godoc
// @Summary List all students
// @Tags students
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the student array"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [get]
func (c *StudentController) List(w http.ResponseWriter, r *http.Request) {
	students, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}

// ResolveTag godoc
// @Summary Resolve an RFID tag code to a student
// @Description Finds the student whose rfid matches the tag, case-sensitive, input trimmed of surrounding whitespace.
// @Tags students
// @Produce json
// @Param rfid path string true "Tag code"
// @Success 200 {object} controllers.StudentSuccessResponse "data contains the student"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/rfid/{rfid} [get]
func (c *StudentController) ResolveTag(w http.ResponseWriter, r *http.Request) {
	student, err := c.Service.ResolveTag(r.Context(), r.PathValue("rfid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "student not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// Update godoc
// @Summary Update a student
// @Description Replaces id, name, rfid and the optional fields of the student currently identified by the path id.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Current student ID"
// @Param student body StudentRequest true "New student data"
// @Success 200 {object} controllers.StudentSuccessResponse "data contains the updated student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate id or rfid)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{id} [put]
func (c *StudentController) Update(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.Update(r.Context(), r.PathValue("id"), req.ID, req.Name, req.RFID, req.Photo, req.Course)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "student not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "duplicate student id or rfid")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (student has attendance logs)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.Service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "student not found")
		case errors.Is(err, domain.ErrConflict):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "student has attendance logs")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}
