package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/githubrishi321/Blog-Application/internal/auth"
	"github.com/githubrishi321/Blog-Application/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a new user, returning its ID.
// Email is stored as submitted (trimmed only); uniqueness is enforced by
// the database and surfaces as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, fullName, email, password string, cost int) (uint64, error) {
	email = strings.TrimSpace(email)
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, email, password_hash, role) VALUES (?,?,?,?)",
		strings.TrimSpace(fullName), email, hash, model.RoleUser)
	if err != nil {
		// MySQL duplicate-key violations carry error number 1062.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by email.  Returns ErrNotFound when no such
// user exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	var u model.User
	var img sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,full_name,email,password_hash,profile_image_url,role,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &img, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	u.ProfileImageURL = img.String
	return u, err
}

// GetByID fetches a user by id.  Returns ErrNotFound when no such user
// exists.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	var img sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,full_name,email,password_hash,profile_image_url,role,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &img, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	u.ProfileImageURL = img.String
	return u, err
}
