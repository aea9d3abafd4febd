package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/githubrishi321/Blog-Application/internal/middleware"
)

// HTTPErrorHandler translates errors that escape handlers into rendered
// error pages: 404 for missing entities and routes, a generic 500 for
// everything else.  Internal details are logged server-side and never
// leaked to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Something went wrong!"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code == http.StatusNotFound {
			msg = "Page not found"
		}
		if s, ok := he.Message.(string); ok && code == http.StatusNotFound && s != "" {
			msg = s
		}
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	rerr := c.Render(code, "error.html", echo.Map{
		"user":    middleware.CurrentUser(c),
		"message": msg,
	})
	if rerr != nil {
		c.Logger().Error(rerr)
		_ = c.NoContent(code)
	}
}
