package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/githubrishi321/Blog-Application/internal/auth" // token verification
)

// CookieName is the name of the session cookie carrying the signed token.
const CookieName = "token"

// userKey is the context key under which verified claims are stored.
const userKey = "user"

// Session returns an Echo middleware that reads the session cookie and, if
// it carries a valid token, attaches the verified claim set to the request
// context.  The middleware is deliberately fail-open: a missing, invalid or
// expired token never aborts the request — it only leaves the request
// anonymous.  Public pages stay viewable with a stale cookie; protected
// routes reject anonymity later, in RequireUser.
func Session(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(CookieName)
            if err != nil || cookie.Value == "" {
                // No cookie at all: proceed anonymously.
                return next(c)
            }
            claims, err := auth.Verify(cookie.Value, secret)
            if err != nil {
                // Invalid or expired token: swallow the error and proceed
                // anonymously, exactly as if no cookie had been sent.
                return next(c)
            }
            c.Set(userKey, claims)
            return next(c)
        }
    }
}

// CurrentUser returns the claims attached by Session, or nil when the
// request is anonymous.
func CurrentUser(c echo.Context) *auth.Claims {
    if claims, ok := c.Get(userKey).(*auth.Claims); ok {
        return claims
    }
    return nil
}

// SetCurrentUser attaches claims to the context directly.  Used by tests
// that exercise handlers without running the Session middleware.
func SetCurrentUser(c echo.Context, claims *auth.Claims) {
    c.Set(userKey, claims)
}
