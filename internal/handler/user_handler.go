package handler

import (
	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/errors"
	"ukdtimers/internal/model"
	"ukdtimers/internal/service"
)

// UserHandler bundles the user management forms.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// AddUserRequest represents the admin "new user" form.
type AddUserRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Fullname string `form:"fullname"`
	Email    string `form:"email"`
	Role     string `form:"role"`
	Room     string `form:"room"`
}

// UpdateAvatarRequest represents the profile avatar form.
type UpdateAvatarRequest struct {
	URL string `form:"url"`
}

// AddUser godoc
// @Summary Add user
// @Description Staff only. Students and anonymous visitors are sent home.
// @Tags users
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string false "Password"
// @Param fullname formData string false "Full name"
// @Param email formData string false "Email"
// @Param role formData string true "ADMIN, TEACHER or STUDENT"
// @Param room formData string false "Room, teachers only"
// @Success 302 "Redirect to /?tab=admin"
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/add_user [post]
func (h *UserHandler) AddUser(c echo.Context) error {
	var req AddUserRequest
	if err := c.Bind(&req); err != nil {
		return redirectAfter(c, errors.ErrInvalidInput, adminPage)
	}

	_, err := h.svc.AddUser(c.Request().Context(), auth.SessionFrom(c), service.NewUserInput{
		Username: req.Username,
		Password: req.Password,
		Fullname: req.Fullname,
		Email:    req.Email,
		Role:     model.Role(req.Role),
		Room:     req.Room,
	})
	return redirectAfter(c, err, adminPage)
}

// UpdateAvatar godoc
// @Summary Update own avatar
// @Tags users
// @Accept x-www-form-urlencoded
// @Param url formData string true "Avatar URL"
// @Success 302 "Redirect to /?tab=profile"
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/update_avatar [post]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	var req UpdateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return redirectAfter(c, errors.ErrInvalidInput, profilePage)
	}

	err := h.svc.UpdateAvatar(c.Request().Context(), auth.SessionFrom(c), req.URL)
	return redirectAfter(c, err, profilePage)
}
