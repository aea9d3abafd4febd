package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// SigninPath is where anonymous requests to protected routes are sent.
const SigninPath = "/user/signin"

// RequireUser returns a middleware that enforces that the request carries a
// verified identity.  Anonymous requests are redirected to the sign-in page
// and the wrapped handler never runs.  It checks only that an identity
// exists; there is no ownership or role check here.  It assumes the Session
// middleware ran earlier in the chain.
func RequireUser() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if CurrentUser(c) == nil {
                return c.Redirect(http.StatusFound, SigninPath)
            }
            return next(c)
        }
    }
}
