package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/auth"
	"hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/service"
)

// AuthHandler handles staff login and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginRequest represents a login form submission. Empty fields are
// rejected by the auth service as invalid credentials.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// LoginPage godoc
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", page(c, "Login", nil))
}

// Login godoc
// @Summary Authenticate staff
// @Description Starts a session and redirects to the dashboard. Failures leave any existing session untouched.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to /dashboard"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router / [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	ctx := c.Request().Context()
	admin, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			logger.FromContext(ctx).Info("login rejected")
		}
		return httpError(err)
	}

	if _, err := h.sessions.Start(c, admin.Email); err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("admin logged in", "admin_email", admin.Email)

	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Success 302 {string} string "Redirect to /"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.End(c)
	return c.Redirect(http.StatusFound, auth.LoginPath)
}
