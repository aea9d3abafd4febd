package repository

import (
	"context"
	"database/sql"

	"github.com/githubrishi321/Blog-Application/internal/model"
)

type CommentRepo struct{ DB *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{DB: db} }

// Create inserts a comment and returns its ID.  createdBy must come from
// the verified session identity.
func (r *CommentRepo) Create(ctx context.Context, content string, blogID, createdBy uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO comments (content, blog_id, created_by) VALUES (?,?,?)",
		content, blogID, createdBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByBlog returns the comments of a blog oldest-first with authors
// resolved via LEFT JOIN; a comment whose creator row is gone carries a nil
// Author.
func (r *CommentRepo) ListByBlog(ctx context.Context, blogID uint64) ([]model.CommentWithAuthor, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.content, c.blog_id, c.created_by, c.created_at,
		       u.id, u.full_name, u.profile_image_url
		FROM comments c
		LEFT JOIN users u ON u.id = c.created_by
		WHERE c.blog_id = ?
		ORDER BY c.created_at ASC`, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CommentWithAuthor
	for rows.Next() {
		var cm model.CommentWithAuthor
		var authorID sql.NullInt64
		var authorName, authorImg sql.NullString
		if err := rows.Scan(&cm.ID, &cm.Content, &cm.BlogID, &cm.CreatedBy, &cm.CreatedAt,
			&authorID, &authorName, &authorImg); err != nil {
			return nil, err
		}
		if authorID.Valid {
			cm.Author = &model.User{
				ID:              uint64(authorID.Int64),
				FullName:        authorName.String,
				ProfileImageURL: authorImg.String,
			}
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}
