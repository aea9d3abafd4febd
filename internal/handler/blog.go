package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/githubrishi321/Blog-Application/internal/middleware"
	"github.com/githubrishi321/Blog-Application/internal/queue"
	"github.com/githubrishi321/Blog-Application/internal/repository"
	queue_publisher "github.com/githubrishi321/Blog-Application/internal/service"
	"github.com/githubrishi321/Blog-Application/internal/storage"
)

// BlogHandler bundles dependencies for the home feed, blog and comment
// endpoints.
type BlogHandler struct {
	Blogs    BlogStore
	Comments CommentStore
	Uploads  Uploader
}

func NewBlogHandler(blogs BlogStore, comments CommentStore, uploads Uploader) *BlogHandler {
	return &BlogHandler{Blogs: blogs, Comments: comments, Uploads: uploads}
}

// Home renders the feed of all blogs, newest first.  A store failure is
// logged and degrades to an empty list; the page itself always renders.
func (h *BlogHandler) Home(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blogs, err := h.Blogs.ListAll(ctx)
	if err != nil {
		c.Logger().Errorf("home: list blogs: %v", err)
		blogs = nil
	}
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"user":  middleware.CurrentUser(c),
		"blogs": blogs,
	})
}

// AddNewPage renders the blog creation form.  The route is guarded.
func (h *BlogHandler) AddNewPage(c echo.Context) error {
	return c.Render(http.StatusOK, "addBlog.html", echo.Map{"user": middleware.CurrentUser(c)})
}

// Create stores a new blog.  The creator is taken exclusively from the
// verified session claims; any creator value in the request body is
// ignored.  The cover image is optional and must be an image.
func (h *BlogHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, middleware.SigninPath)
	}
	createdBy, err := user.UserID()
	if err != nil {
		c.Logger().Errorf("create blog: bad id claim %q: %v", user.ID, err)
		return c.Redirect(http.StatusFound, middleware.SigninPath)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	body := strings.TrimSpace(c.FormValue("body"))
	if title == "" || body == "" {
		return h.addBlogError(c, http.StatusBadRequest, "Title and body are required")
	}

	coverImageURL := ""
	if fh, ferr := c.FormFile("coverImage"); ferr == nil && fh != nil {
		coverImageURL, err = h.Uploads.Save(fh)
		if err != nil {
			if errors.Is(err, storage.ErrNotImage) {
				return h.addBlogError(c, http.StatusBadRequest, "Only image files are allowed")
			}
			c.Logger().Errorf("create blog: store cover image: %v", err)
			return h.addBlogError(c, http.StatusInternalServerError, "Error creating blog")
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Blogs.Create(ctx, title, body, coverImageURL, createdBy)
	if err != nil {
		c.Logger().Errorf("create blog: %v", err)
		return h.addBlogError(c, http.StatusInternalServerError, "Error creating blog")
	}

	// Fire-and-forget: a broker failure never affects the request.
	go func() {
		_ = queue_publisher.PublishBlogPublished(context.Background(), queue.BlogPublishedEvent{
			BlogID:      id,
			Title:       title,
			AuthorID:    createdBy,
			AuthorName:  user.FullName,
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.Redirect(http.StatusFound, fmt.Sprintf("/blog/%d", id))
}

// View renders a single blog with its author and comments.  A missing or
// malformed id yields the 404 page.
func (h *BlogHandler) View(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blog, err := h.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		c.Logger().Errorf("view blog %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error loading blog")
	}

	comments, err := h.Comments.ListByBlog(ctx, id)
	if err != nil {
		c.Logger().Errorf("view blog %d: list comments: %v", id, err)
		comments = nil
	}

	return c.Render(http.StatusOK, "blog.html", echo.Map{
		"user":     middleware.CurrentUser(c),
		"blog":     blog,
		"comments": comments,
	})
}

// CreateComment attaches a comment to a blog and redirects back to it.
// Empty content redirects without creating anything; a store failure is
// logged but still redirects, matching the page-centric flow.
func (h *BlogHandler) CreateComment(c echo.Context) error {
	blogID, err := strconv.ParseUint(c.Param("blogId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
	}
	back := fmt.Sprintf("/blog/%d", blogID)

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, middleware.SigninPath)
	}
	createdBy, err := user.UserID()
	if err != nil {
		return c.Redirect(http.StatusFound, middleware.SigninPath)
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		return c.Redirect(http.StatusFound, back)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Comments.Create(ctx, content, blogID, createdBy)
	if err != nil {
		c.Logger().Errorf("create comment on blog %d: %v", blogID, err)
		return c.Redirect(http.StatusFound, back)
	}

	go func() {
		_ = queue_publisher.PublishCommentAdded(context.Background(), queue.CommentAddedEvent{
			CommentID: id,
			BlogID:    blogID,
			AuthorID:  createdBy,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.Redirect(http.StatusFound, back)
}

func (h *BlogHandler) addBlogError(c echo.Context, code int, msg string) error {
	return c.Render(code, "addBlog.html", echo.Map{"user": middleware.CurrentUser(c), "error": msg})
}
