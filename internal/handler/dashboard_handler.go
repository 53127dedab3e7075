package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/service"
)

// DashboardHandler renders the staff landing page.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Show godoc
// @Summary Dashboard with record counts
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 302 {string} string "Redirect to / without a session"
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, stats)
	}
	return c.Render(http.StatusOK, "dashboard.html", page(c, "Dashboard", stats))
}
