package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/service"
)

// DashboardHandler serves the home page data.
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Index godoc
// @Summary Dashboard
// @Description Current user, visible absences, users, subjects and creators.
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Dashboard
// @Router / [get]
func (h *DashboardHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Dashboard(c.Request().Context(), auth.SessionFrom(c)))
}
