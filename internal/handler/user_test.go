package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/githubrishi321/Blog-Application/internal/auth"
	"github.com/githubrishi321/Blog-Application/internal/config"
	"github.com/githubrishi321/Blog-Application/internal/middleware"
	"github.com/githubrishi321/Blog-Application/internal/model"
	"github.com/githubrishi321/Blog-Application/internal/repository"
	"github.com/githubrishi321/Blog-Application/internal/view"
)

const testSecret = "fixture-secret"

type createUserCall struct {
	fullName, email, password string
}

type fakeUserStore struct {
	byEmail   map[string]model.User
	createErr error
	created   []createUserCall
}

func (f *fakeUserStore) Create(_ context.Context, fullName, email, password string, _ int) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, createUserCall{fullName, email, password})
	return uint64(len(f.created)), nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := view.New()
	require.NoError(t, err)
	e.Renderer = r
	return e
}

func postForm(t *testing.T, e *echo.Echo, path string, form url.Values) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func testCfg() config.Config {
	return config.Config{JWTSecret: testSecret, BcryptCost: bcrypt.MinCost}
}

func TestSignupMissingFields(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	h := NewUserHandler(testCfg(), store)
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signup", url.Values{"fullName": {"Alice"}})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
	assert.Empty(t, store.created)
}

func TestSignupShortPassword(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	h := NewUserHandler(testCfg(), store)
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signup", url.Values{
		"fullName": {"Alice"}, "email": {"a@x.com"}, "password": {"12345"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters long")
	assert.Empty(t, store.created)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{createErr: repository.ErrEmailExists}
	h := NewUserHandler(testCfg(), store)
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signup", url.Values{
		"fullName": {"Alice"}, "email": {"a@x.com"}, "password": {"secret1"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already exists")
}

func TestSignupStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{createErr: errors.New("store down")}
	h := NewUserHandler(testCfg(), store)
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signup", url.Values{
		"fullName": {"Alice"}, "email": {"a@x.com"}, "password": {"secret1"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error creating account")
	assert.NotContains(t, rec.Body.String(), "store down")
}

func TestSignupSuccessRedirectsToSignin(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	h := NewUserHandler(testCfg(), store)
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signup", url.Values{
		"fullName": {"  Alice Example  "}, "email": {" a@x.com "}, "password": {"secret1"},
	})
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/signin", rec.Header().Get(echo.HeaderLocation))
	require.Len(t, store.created, 1)
	assert.Equal(t, "Alice Example", store.created[0].fullName)
	assert.Equal(t, "a@x.com", store.created[0].email)
	// No cookie is set on signup; the user signs in explicitly.
	assert.Empty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func signinStore(t *testing.T) *fakeUserStore {
	t.Helper()
	hash, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeUserStore{byEmail: map[string]model.User{
		"a@x.com": {ID: 7, FullName: "Alice Example", Email: "a@x.com", PasswordHash: hash, Role: model.RoleUser},
	}}
}

func TestSigninUniformFailureMessage(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(testCfg(), signinStore(t))
	e := newTestEcho(t)

	recUnknown, c1 := postForm(t, e, "/user/signin", url.Values{
		"email": {"nobody@x.com"}, "password": {"secret1"},
	})
	require.NoError(t, h.Signin(c1))

	recWrongPass, c2 := postForm(t, e, "/user/signin", url.Values{
		"email": {"a@x.com"}, "password": {"wrong"},
	})
	require.NoError(t, h.Signin(c2))

	// Unknown email and wrong password are indistinguishable.
	assert.Equal(t, http.StatusOK, recUnknown.Code)
	assert.Equal(t, recUnknown.Code, recWrongPass.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrongPass.Body.String())
	assert.Contains(t, recUnknown.Body.String(), "Incorrect Email or Password")
	assert.Empty(t, recUnknown.Header().Get(echo.HeaderSetCookie))
}

func TestSigninSuccessSetsCookie(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(testCfg(), signinStore(t))
	e := newTestEcho(t)

	rec, c := postForm(t, e, "/user/signin", url.Values{
		"email": {"a@x.com"}, "password": {"secret1"},
	})
	require.NoError(t, h.Signin(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	res := rec.Result()
	var token string
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.CookieName {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token)

	claims, err := auth.Verify(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice Example", claims.FullName)
}

func TestLogoutClearsCookie(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(testCfg(), &fakeUserStore{})
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/user/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	res := rec.Result()
	var cleared bool
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.CookieName {
			cleared = ck.Value == "" && ck.MaxAge < 0
		}
	}
	assert.True(t, cleared, "expected the token cookie to be cleared")
}
