package router // package router defines how HTTP routes are registered for the application

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/githubrishi321/Blog-Application/internal/handler"    // handlers implement the page logic
	"github.com/githubrishi321/Blog-Application/internal/middleware" // session, guard and cache middleware
)

// Register wires every route of the application.  The Session middleware is
// applied globally in main, so every handler can read the current identity;
// pageCache may be nil when Redis is unavailable, in which case public
// pages are rendered on every request.
func Register(e *echo.Echo, users *handler.UserHandler, blogs *handler.BlogHandler, pageCache echo.MiddlewareFunc) {
	// Public pages.  The home feed and individual blog pages are cacheable
	// for anonymous visitors.
	if pageCache != nil {
		e.GET("/", blogs.Home, pageCache)
	} else {
		e.GET("/", blogs.Home)
	}
	e.GET("/healthz", handler.Health)

	// Account routes under /user.  Signup and signin are public; logout is
	// harmless without a session so it stays unguarded too, matching the
	// cookie-clearing semantics.
	u := e.Group("/user")
	u.GET("/signup", users.SignupPage)
	u.GET("/signin", users.SigninPage)
	u.POST("/signup", users.Signup)
	u.POST("/signin", users.Signin)
	u.GET("/logout", users.Logout)

	// Blog routes.  Reads are public; every write requires an identity.
	b := e.Group("/blog")
	guard := middleware.RequireUser()
	b.GET("/add-new", blogs.AddNewPage, guard)
	b.POST("", blogs.Create, guard)
	b.POST("/comment/:blogId", blogs.CreateComment, guard)
	if pageCache != nil {
		b.GET("/:id", blogs.View, pageCache)
	} else {
		b.GET("/:id", blogs.View)
	}
}
