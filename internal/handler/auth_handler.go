package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/errors"
	"ukdtimers/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	userService service.UserService
	sessions    *auth.SessionManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService service.UserService, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions}
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"pass" validate:"required"`
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and sets the session cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param pass formData string true "Password"
// @Success 302 "Redirect to / or /?error=login_failed"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return redirectAfter(c, errors.ErrInvalidCredentials, homePage)
	}
	if err := c.Validate(&req); err != nil {
		return redirectAfter(c, errors.ErrInvalidCredentials, homePage)
	}

	session, err := h.userService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return redirectAfter(c, err, homePage)
	}
	if err := h.sessions.Issue(c, session); err != nil {
		return httpError(c, err)
	}
	return c.Redirect(http.StatusFound, homePage)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the session and clears the cookie.
// @Tags auth
// @Success 302 "Redirect to /"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Revoke(c); err != nil {
		// The cookie is cleared either way.
		log.Printf("logout: revoke session: %v", err)
	}
	return c.Redirect(http.StatusFound, homePage)
}
