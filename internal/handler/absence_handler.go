package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/errors"
	"ukdtimers/internal/service"
)

// AbsenceHandler handles recording and resolving absences.
type AbsenceHandler struct {
	svc service.AbsenceService
}

// NewAbsenceHandler creates a new absence handler.
func NewAbsenceHandler(svc service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{svc: svc}
}

// AddAbsenceRequest represents the "new absence" form.
type AddAbsenceRequest struct {
	StudentID string `form:"student_id"`
	SubjectID string `form:"subject_id"`
	Deadline  string `form:"deadline"`
}

// ResolveResponse acknowledges a resolve call.
type ResolveResponse struct {
	Success bool `json:"success"`
}

// AddAbsence godoc
// @Summary Record an absence
// @Description Staff only. Non-numeric ids are rejected.
// @Tags absences
// @Accept x-www-form-urlencoded
// @Param student_id formData int true "Student id"
// @Param subject_id formData int true "Subject id"
// @Param deadline formData string false "Deadline, e.g. 2025-01-01T00:00"
// @Success 302 "Redirect to /?tab=timers"
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/add_absence [post]
func (h *AbsenceHandler) AddAbsence(c echo.Context) error {
	var req AddAbsenceRequest
	if err := c.Bind(&req); err != nil {
		return redirectAfter(c, errors.ErrInvalidInput, timersPage)
	}

	_, err := h.svc.AddAbsence(c.Request().Context(), auth.SessionFrom(c), service.NewAbsenceInput{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Deadline:  req.Deadline,
	})
	return redirectAfter(c, err, timersPage)
}

// ResolveAbsence godoc
// @Summary Resolve an absence
// @Description Deletes the absence. Unknown ids still report success.
// @Tags absences
// @Produce json
// @Param id path string true "Absence id"
// @Success 200 {object} ResolveResponse
// @Failure 403 {object} ResolveResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/resolve/{id} [get]
func (h *AbsenceHandler) ResolveAbsence(c echo.Context) error {
	err := h.svc.ResolveAbsence(c.Request().Context(), auth.SessionFrom(c), c.Param("id"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, ResolveResponse{Success: true})
	case stderrors.Is(err, errors.ErrForbidden):
		return c.JSON(http.StatusForbidden, ResolveResponse{Success: false})
	default:
		return httpError(c, err)
	}
}
