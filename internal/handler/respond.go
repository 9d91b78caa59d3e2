package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/errors"
)

const (
	homePage    = "/"
	adminPage   = "/?tab=admin"
	timersPage  = "/?tab=timers"
	profilePage = "/?tab=profile"
)

// redirectAfter sends the browser back to a page after a form post. Errors
// that have no page to return to become JSON error responses.
func redirectAfter(c echo.Context, err error, success string) error {
	target, ok := errors.RedirectTarget(err, success)
	if !ok {
		return httpError(c, err)
	}
	return c.Redirect(http.StatusFound, target)
}

func httpError(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
