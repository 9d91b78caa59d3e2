package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/service"
)

// SyncHandler triggers the attendance sheet import.
type SyncHandler struct {
	svc service.SyncService
}

// NewSyncHandler creates a new sync handler.
func NewSyncHandler(svc service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

// SyncSheets godoc
// @Summary Import the attendance sheet
// @Description Staff only. Failures are reported in the message with success=false.
// @Tags sync
// @Produce json
// @Success 200 {object} service.SyncResult
// @Router /api/sync_sheets [get]
func (h *SyncHandler) SyncSheets(c echo.Context) error {
	result, err := h.svc.SyncSheets(c.Request().Context(), auth.SessionFrom(c))
	if err != nil {
		log.Printf("sync sheets: %v", err)
	}
	return c.JSON(http.StatusOK, result)
}
