package controllers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"attendtrack/internal/delivery/http/helpers"
	"attendtrack/internal/domain"
)

// LoginRequest is the request body for POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(l.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the success payload for POST /admin/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthController authenticates the configured administrator and issues the
// Bearer tokens the auth middleware validates.
type AuthController struct {
	Logger            *slog.Logger
	Hasher            domain.PasswordHasher
	Issuer            domain.TokenIssuer
	AdminEmail        string
	AdminPasswordHash string
	AdminPasswordSalt string
	TokenExpiry       time.Duration
}

func NewAuthController(logger *slog.Logger, hasher domain.PasswordHasher, issuer domain.TokenIssuer,
	adminEmail, adminPasswordHash, adminPasswordSalt string, tokenExpiry time.Duration) *AuthController {
	return &AuthController{
		Logger:            logger,
		Hasher:            hasher,
		Issuer:            issuer,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		AdminPasswordSalt: adminPasswordSalt,
		TokenExpiry:       tokenExpiry,
	}
}

// Login godoc
// @Summary Administrator login
// @Description Verifies the configured administrator credentials and issues a Bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Administrator credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and expires_at"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if c.AdminEmail == "" || c.AdminPasswordHash == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "administrator login is not configured")
		return
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(c.AdminEmail)) == 1
	if err := c.Hasher.Compare(c.AdminPasswordHash, c.AdminPasswordSalt, req.Password); err != nil || !emailMatch {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
		return
	}
	token, err := c.Issuer.Issue("admin", c.AdminEmail, c.TokenExpiry)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "token issue failed")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(c.TokenExpiry),
	})
}
