package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/githubrishi321/Blog-Application/internal/model"
)

type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

// Create inserts a blog and returns its ID.  createdBy must come from the
// verified session identity, never from request input.
func (r *BlogRepo) Create(ctx context.Context, title, body, coverImageURL string, createdBy uint64) (uint64, error) {
	var cover sql.NullString
	if coverImageURL != "" {
		cover = sql.NullString{String: coverImageURL, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO blogs (title, body, cover_image_url, created_by) VALUES (?,?,?,?)",
		title, body, cover, createdBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListAll returns all blogs newest-first with their authors resolved.  The
// author join is a LEFT JOIN: a blog whose creator row is gone still lists,
// with a nil Author.
func (r *BlogRepo) ListAll(ctx context.Context) ([]model.BlogWithAuthor, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT b.id, b.title, b.body, b.cover_image_url, b.created_by, b.created_at,
		       u.id, u.full_name, u.profile_image_url
		FROM blogs b
		LEFT JOIN users u ON u.id = b.created_by
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BlogWithAuthor
	for rows.Next() {
		b, err := scanBlogWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns a single blog with its author resolved.  Returns
// ErrNotFound when no blog has the given id.
func (r *BlogRepo) GetByID(ctx context.Context, id uint64) (model.BlogWithAuthor, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT b.id, b.title, b.body, b.cover_image_url, b.created_by, b.created_at,
		       u.id, u.full_name, u.profile_image_url
		FROM blogs b
		LEFT JOIN users u ON u.id = b.created_by
		WHERE b.id = ? LIMIT 1`, id)
	b, err := scanBlogWithAuthor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BlogWithAuthor{}, ErrNotFound
	}
	return b, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlogWithAuthor(row rowScanner) (model.BlogWithAuthor, error) {
	var b model.BlogWithAuthor
	var cover sql.NullString
	var authorID sql.NullInt64
	var authorName, authorImg sql.NullString
	err := row.Scan(&b.ID, &b.Title, &b.Body, &cover, &b.CreatedBy, &b.CreatedAt,
		&authorID, &authorName, &authorImg)
	if err != nil {
		return model.BlogWithAuthor{}, err
	}
	b.CoverImageURL = cover.String
	if authorID.Valid {
		b.Author = &model.User{
			ID:              uint64(authorID.Int64),
			FullName:        authorName.String,
			ProfileImageURL: authorImg.String,
		}
	}
	return b, nil
}
