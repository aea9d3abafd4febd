package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/githubrishi321/Blog-Application/internal/auth"
	"github.com/githubrishi321/Blog-Application/internal/config"
	"github.com/githubrishi321/Blog-Application/internal/middleware"
	"github.com/githubrishi321/Blog-Application/internal/repository"
)

// minPasswordLen is the minimum accepted password length at signup.
const minPasswordLen = 6

// UserHandler bundles dependencies for the signup/signin/logout endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// SignupPage renders the signup form.
func (h *UserHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{"user": middleware.CurrentUser(c)})
}

// SigninPage renders the signin form.
func (h *UserHandler) SigninPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signin.html", echo.Map{"user": middleware.CurrentUser(c)})
}

// Signup validates the form, creates the user and redirects to signin.
// There is no auto-login: the new user signs in explicitly.  A duplicate
// email is reported distinctly; any other store failure renders a generic
// message.
func (h *UserHandler) Signup(c echo.Context) error {
	fullName := strings.TrimSpace(c.FormValue("fullName"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if fullName == "" || email == "" || password == "" {
		return h.signupError(c, http.StatusOK, "All fields are required")
	}
	if len(password) < minPasswordLen {
		return h.signupError(c, http.StatusOK, "Password must be at least 6 characters long")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, fullName, email, password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return h.signupError(c, http.StatusOK, "Email already exists")
		}
		c.Logger().Errorf("signup: create user: %v", err)
		return h.signupError(c, http.StatusOK, "Error creating account")
	}
	return c.Redirect(http.StatusFound, "/user/signin")
}

// Signin verifies credentials and sets the session cookie.  An unknown
// email and a wrong password produce the same message so the response never
// reveals whether an account exists.
func (h *UserHandler) Signin(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return h.signinError(c, "Email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			c.Logger().Errorf("signin: lookup user: %v", err)
		}
		return h.signinError(c, "Incorrect Email or Password")
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return h.signinError(c, "Incorrect Email or Password")
	}

	token, err := auth.Issue(u, h.Cfg.JWTSecret, auth.TokenTTL)
	if err != nil {
		c.Logger().Errorf("signin: issue token: %v", err)
		return h.signinError(c, "Incorrect Email or Password")
	}

	c.SetCookie(&http.Cookie{
		Name:    middleware.CookieName,
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(auth.TokenTTL),
	})
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie and redirects home.  The token itself
// stays valid until its expiry; there is no revocation list.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:   middleware.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) signupError(c echo.Context, code int, msg string) error {
	return c.Render(code, "signup.html", echo.Map{"user": middleware.CurrentUser(c), "error": msg})
}

func (h *UserHandler) signinError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "signin.html", echo.Map{"user": middleware.CurrentUser(c), "error": msg})
}
