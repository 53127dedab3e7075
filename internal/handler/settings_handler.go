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

// SettingsHandler lets the signed in admin change their password.
type SettingsHandler struct {
	authService service.AuthService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(authService service.AuthService) *SettingsHandler {
	return &SettingsHandler{authService: authService}
}

// ChangePasswordRequest represents the password change form.
type ChangePasswordRequest struct {
	CurrentPassword string `form:"current_password" json:"current_password" validate:"required"`
	NewPassword     string `form:"new_password" json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required"`
}

// Show godoc
// @Summary Settings page
// @Tags settings
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /settings [get]
func (h *SettingsHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "settings.html", page(c, "Settings", nil))
}

// ChangePassword godoc
// @Summary Change the password of the signed in admin
// @Tags settings
// @Accept x-www-form-urlencoded
// @Produce html
// @Param current_password formData string true "Current password"
// @Param new_password formData string true "New password, at least 8 characters"
// @Param confirm_password formData string true "New password again"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings [post]
func (h *SettingsHandler) ChangePassword(c echo.Context) error {
	sess, ok := auth.Current(c)
	if !ok {
		return c.Redirect(http.StatusFound, auth.LoginPath)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()
	err := h.authService.ChangePassword(ctx, sess.Email, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		if mapped.StatusCode >= http.StatusInternalServerError {
			return httpError(err)
		}
		p := page(c, "Settings", nil)
		p.Error = mapped.Message
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			p.Error = "Current password is incorrect"
		}
		return c.Render(mapped.StatusCode, "settings.html", p)
	}
	logger.FromContext(ctx).Info("password changed")

	p := page(c, "Settings", nil)
	p.Flash = "Password updated"
	return c.Render(http.StatusOK, "settings.html", p)
}
