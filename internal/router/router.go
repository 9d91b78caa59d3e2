package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ukdtimers/docs"
	"ukdtimers/internal/auth"
	"ukdtimers/internal/config"
	"ukdtimers/internal/handler"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Absence   *handler.AbsenceHandler
	Sync      *handler.SyncHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, sessions *auth.SessionManager, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessions.Middleware())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", h.Dashboard.Index)
	e.POST("/login", h.Auth.Login)
	e.GET("/logout", h.Auth.Logout)

	api := e.Group("/api")
	api.POST("/add_user", h.User.AddUser)
	api.POST("/add_absence", h.Absence.AddAbsence)
	api.GET("/resolve/:id", h.Absence.ResolveAbsence)
	api.POST("/update_avatar", h.User.UpdateAvatar)
	api.GET("/sync_sheets", h.Sync.SyncSheets)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
