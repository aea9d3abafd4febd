package handler

import (
	"context"
	"mime/multipart"

	"github.com/githubrishi321/Blog-Application/internal/model"
)

// The handlers depend on small store interfaces rather than the concrete
// repositories so tests can substitute fakes.  The repository package
// satisfies all of them.

// UserStore persists and looks up user identities.
type UserStore interface {
	Create(ctx context.Context, fullName, email, password string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// BlogStore persists blogs and resolves their author references.
type BlogStore interface {
	Create(ctx context.Context, title, body, coverImageURL string, createdBy uint64) (uint64, error)
	ListAll(ctx context.Context) ([]model.BlogWithAuthor, error)
	GetByID(ctx context.Context, id uint64) (model.BlogWithAuthor, error)
}

// CommentStore persists comments and resolves their author references.
type CommentStore interface {
	Create(ctx context.Context, content string, blogID, createdBy uint64) (uint64, error)
	ListByBlog(ctx context.Context, blogID uint64) ([]model.CommentWithAuthor, error)
}

// Uploader stores an uploaded cover image and returns its public URL path.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
}
