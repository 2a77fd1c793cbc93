package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{}

func (h *DashboardHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", page(c, "Dashboard", nil))
}

// NotFound renders the static 404 screen inside the standard chrome. The
// render itself always succeeds.
func (h *DashboardHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "notfound.html", page(c, "Not Found", nil))
}
